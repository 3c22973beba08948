package converter

import (
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientName: appointment.PatientName,
		Date:        appointment.Date.Format(dateLayout),
		Time:        appointment.Time,
		Type:        appointment.Type,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
