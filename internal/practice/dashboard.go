package practice

import (
	"time"

	"practice-manager/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DefaultRecentAppointments is how many appointments the activity feed shows
const DefaultRecentAppointments = 8

// DashboardInput is the data a dashboard is computed from
type DashboardInput struct {
	Patients     []entity.Patient
	Appointments []entity.Appointment
	Records      []entity.FinancialRecord
	Settings     entity.AppSettings
	RecentLimit  int
}

// Dashboard holds the derived metrics for one render
type Dashboard struct {
	Today           time.Time
	Totals          Totals
	Balance         decimal.Decimal
	ScheduledToday  int
	PatientCount    int
	MonthlyGoal     decimal.Decimal
	ProgressPercent int
	Recent          []entity.Appointment
}

// BuildDashboard computes every dashboard metric against a single reading of
// the clock, so one build is consistent even across midnight.
func BuildDashboard(clock Clock, in DashboardInput) Dashboard {
	today := calendarDate(clock.Now())

	limit := in.RecentLimit
	if limit <= 0 {
		limit = DefaultRecentAppointments
	}

	totals := Aggregate(in.Records)
	return Dashboard{
		Today:           today,
		Totals:          totals,
		Balance:         totals.Balance(),
		ScheduledToday:  CountScheduledOn(in.Appointments, today),
		PatientCount:    len(in.Patients),
		MonthlyGoal:     in.Settings.MonthlyGoal,
		ProgressPercent: ProgressPercent(totals.Income, in.Settings.MonthlyGoal),
		Recent:          RecentAppointments(in.Appointments, limit),
	}
}
