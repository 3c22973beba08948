package practice

import (
	"strings"
	"time"

	"practice-manager/internal/domain/entity"
)

// NewAppointment books a SCHEDULED visit. The date keeps only its calendar
// components and slot must be a 24h HH:MM time.
func NewAppointment(ids IDGenerator, patientName string, date time.Time, slot, kind string) (entity.Appointment, error) {
	patientName = strings.TrimSpace(patientName)
	if patientName == "" {
		return entity.Appointment{}, entity.NewValidationError("patient_name", "is required")
	}
	if _, err := time.Parse("15:04", slot); err != nil {
		return entity.Appointment{}, entity.NewValidationError("time", "must match the format 15:04")
	}

	return entity.Appointment{
		ID:          ids.NewID(),
		PatientName: patientName,
		Date:        calendarDate(date),
		Time:        slot,
		Type:        strings.TrimSpace(kind),
		Status:      entity.AppointmentScheduled,
	}, nil
}

// ToggleStatus flips an appointment between SCHEDULED and COMPLETED
func ToggleStatus(appointment entity.Appointment) entity.Appointment {
	return appointment.Toggle()
}

// IsScheduledOn reports whether the appointment is pending on day
func IsScheduledOn(appointment entity.Appointment, day time.Time) bool {
	return appointment.IsScheduledOn(day)
}

// CountScheduledOn counts pending appointments on day
func CountScheduledOn(appointments []entity.Appointment, day time.Time) int {
	count := 0
	for _, a := range appointments {
		if a.IsScheduledOn(day) {
			count++
		}
	}
	return count
}

// RecentAppointments returns the last n appointments, most recent first.
// Input order is taken as insertion order.
func RecentAppointments(appointments []entity.Appointment, n int) []entity.Appointment {
	if n <= 0 || len(appointments) == 0 {
		return []entity.Appointment{}
	}
	if n > len(appointments) {
		n = len(appointments)
	}

	recent := make([]entity.Appointment, 0, n)
	for i := len(appointments) - 1; i >= len(appointments)-n; i-- {
		recent = append(recent, appointments[i])
	}
	return recent
}
