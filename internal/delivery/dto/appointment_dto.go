package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Time        string `json:"time" validate:"required,datetime=15:04"`      // Format: HH:MM
	Type        string `json:"type"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
