package dto

import (
	"time"
)

// Request DTOs

type CreatePatientRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"` // Format: YYYY-MM-DD, not enforced
	Notes     string `json:"notes"`
}

type AppendHistoryRequest struct {
	Category string `json:"category" validate:"required,oneof=CONSULTATION EXAM PROCEDURE OBSERVATION"`
	Content  string `json:"content" validate:"required"`
}

type UpdatePatientFieldRequest struct {
	Value string `json:"value"`
}

// Response DTOs

type HistoryEntryResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // Format: YYYY-MM-DD
	Category string `json:"category"`
	Content  string `json:"content"`
}

type PatientResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Phone     string                 `json:"phone"`
	Email     string                 `json:"email,omitempty"`
	BirthDate string                 `json:"birth_date,omitempty"`
	Notes     string                 `json:"notes,omitempty"`
	LastVisit *HistoryEntryResponse  `json:"last_visit,omitempty"`
	History   []HistoryEntryResponse `json:"history"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
