package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"practice-manager/internal/domain/entity"
	"practice-manager/internal/practice"
	"practice-manager/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDashboardUsecase_GetDashboard(t *testing.T) {
	db, _ := newMockDB(t)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	patients := NewMockPatientRepository()
	patients.Patients["p1"] = &entity.Patient{ID: "p1"}
	patients.Order = []string{"p1"}

	appointments := &MockAppointmentRepository{Appointments: []entity.Appointment{
		{ID: "a1", Date: today, Status: entity.AppointmentScheduled},
		{ID: "a2", Date: today, Status: entity.AppointmentCompleted},
	}}
	records := &MockFinancialRecordRepository{Records: []entity.FinancialRecord{
		{Type: entity.FinancialIncome, Amount: decimal.NewFromInt(1000)},
		{Type: entity.FinancialPix, Amount: decimal.NewFromInt(500)},
		{Type: entity.FinancialExpense, Amount: decimal.NewFromInt(300)},
	}}
	settings := NewSettingsUsecase(db, quietLogger(), &MockSettingsRepository{
		Stored: &entity.AppSettings{ID: 1, MonthlyGoal: decimal.NewFromInt(2000)},
	}, nil, nil)
	collector := metrics.NewCollector(nil)

	uc := NewDashboardUsecase(db, quietLogger(), practice.FixedClock(testNow), 8, patients, appointments, records, settings, collector)

	resp, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, 1, resp.ScheduledToday)
	assert.Equal(t, 1, resp.PatientCount)
	assert.True(t, resp.Balance.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 75, resp.ProgressPercent)
	require.Len(t, resp.Recent, 2)
	assert.Equal(t, "a2", resp.Recent[0].ID)
	assert.Equal(t, 75.0, testutil.ToFloat64(collector.GoalProgressPercent))
}

func TestDashboardUsecase_RepositoryError(t *testing.T) {
	db, _ := newMockDB(t)
	records := &MockFinancialRecordRepository{FindAllFunc: func(db *gorm.DB) ([]entity.FinancialRecord, error) {
		return nil, errors.New("timeout")
	}}
	settings := NewSettingsUsecase(db, quietLogger(), &MockSettingsRepository{}, nil, nil)
	uc := NewDashboardUsecase(db, quietLogger(), practice.FixedClock(testNow), 8,
		NewMockPatientRepository(), &MockAppointmentRepository{}, records, settings, nil)

	_, err := uc.GetDashboard(context.Background())
	assert.EqualError(t, err, "timeout")
}
