package usecase

import (
	"context"

	"practice-manager/internal/converter"
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/repository"
	"practice-manager/internal/practice"
	"practice-manager/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clock           practice.Clock
	recentLimit     int
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.FinancialRecordRepository
	settingsUsecase SettingsUsecase
	metrics         *metrics.Collector
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock practice.Clock,
	recentLimit int,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.FinancialRecordRepository,
	settingsUsecase SettingsUsecase,
	metrics *metrics.Collector,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		clock:           clock,
		recentLimit:     recentLimit,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		settingsUsecase: settingsUsecase,
		metrics:         metrics,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)

	patients, err := u.patientRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	records, err := u.recordRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find financial records: %+v", err)
		return nil, err
	}

	settings, err := u.settingsUsecase.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := practice.BuildDashboard(u.clock, practice.DashboardInput{
		Patients:     patients,
		Appointments: appointments,
		Records:      records,
		Settings:     settings,
		RecentLimit:  u.recentLimit,
	})

	u.metrics.SetGoalProgress(dashboard.ProgressPercent)

	return converter.DashboardToResponse(dashboard), nil
}
