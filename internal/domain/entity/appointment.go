package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted:
		return true
	}
	return false
}

// Appointment is a scheduled visit. PatientName is a denormalized display string.
type Appointment struct {
	ID          string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	PatientName string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	Date        time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time        string            `gorm:"type:varchar(5);not null" json:"time"` // Format: HH:MM
	Type        string            `gorm:"type:varchar(100)" json:"type"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if appointment is still pending
func (a Appointment) IsScheduled() bool {
	return a.Status == AppointmentScheduled
}

// IsCompleted checks if appointment was attended
func (a Appointment) IsCompleted() bool {
	return a.Status == AppointmentCompleted
}

// Toggle flips SCHEDULED and COMPLETED. Every transition is legal and
// Toggle is its own inverse.
func (a Appointment) Toggle() Appointment {
	switch a.Status {
	case AppointmentCompleted:
		a.Status = AppointmentScheduled
	default:
		a.Status = AppointmentCompleted
	}
	return a
}

// IsScheduledOn reports whether the appointment is pending on the given
// calendar day. Only year, month and day are compared.
func (a Appointment) IsScheduledOn(day time.Time) bool {
	return a.IsScheduled() && SameCalendarDay(a.Date, day)
}

// SameCalendarDay compares the calendar components of two instants as they
// are, without converting either to another location.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
