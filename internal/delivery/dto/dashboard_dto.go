package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	Date            string                `json:"date"`
	Income          decimal.Decimal       `json:"income"`
	Expense         decimal.Decimal       `json:"expense"`
	Balance         decimal.Decimal       `json:"balance"`
	ScheduledToday  int                   `json:"scheduled_today"`
	PatientCount    int                   `json:"patient_count"`
	MonthlyGoal     decimal.Decimal       `json:"monthly_goal"`
	ProgressPercent int                   `json:"progress_percent"`
	Recent          []AppointmentResponse `json:"recent_appointments"`
}
