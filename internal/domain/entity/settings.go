package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsRowID is the primary key of the single settings row
const SettingsRowID = 1

// AppSettings is the practice-wide configuration. There is exactly one.
type AppSettings struct {
	ID               int             `gorm:"primaryKey;autoIncrement:false" json:"-"`
	ClinicName       string          `gorm:"type:varchar(255)" json:"clinic_name"`
	DoctorName       string          `gorm:"type:varchar(255)" json:"doctor_name"`
	ProfessionalRole string          `gorm:"type:varchar(255)" json:"professional_role"`
	ProfileImage     string          `gorm:"type:text" json:"profile_image"` // opaque, usually a data URL
	WhatsApp         string          `gorm:"column:whatsapp;type:varchar(40)" json:"whatsapp"`
	Instagram        string          `gorm:"type:varchar(100)" json:"instagram"`
	MonthlyGoal      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"monthly_goal"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppSettings) TableName() string {
	return "app_settings"
}

// SettingsInput is an incoming settings replacement. Nil string fields keep
// the current value. MonthlyGoal is taken as-is from the caller and coerced
// leniently.
type SettingsInput struct {
	ClinicName       *string
	DoctorName       *string
	ProfessionalRole *string
	ProfileImage     *string
	WhatsApp         *string
	Instagram        *string
	MonthlyGoal      any
}
