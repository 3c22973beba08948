package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// UpdateSettingsRequest replaces the settings record. Omitted text fields keep
// their value; monthly_goal is coerced leniently and becomes 0 when omitted.
type UpdateSettingsRequest struct {
	ClinicName       *string `json:"clinic_name"`
	DoctorName       *string `json:"doctor_name"`
	ProfessionalRole *string `json:"professional_role"`
	ProfileImage     *string `json:"profile_image"`
	WhatsApp         *string `json:"whatsapp"`
	Instagram        *string `json:"instagram"`
	MonthlyGoal      any     `json:"monthly_goal"`
}

type UpdateGoalRequest struct {
	MonthlyGoal any `json:"monthly_goal"`
}

// Response DTOs

type SettingsResponse struct {
	ClinicName       string          `json:"clinic_name"`
	DoctorName       string          `json:"doctor_name"`
	ProfessionalRole string          `json:"professional_role"`
	ProfileImage     string          `json:"profile_image,omitempty"`
	WhatsApp         string          `json:"whatsapp"`
	Instagram        string          `json:"instagram"`
	MonthlyGoal      decimal.Decimal `json:"monthly_goal"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
