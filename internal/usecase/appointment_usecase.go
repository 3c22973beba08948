package usecase

import (
	"context"
	"errors"
	"time"

	"practice-manager/internal/converter"
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/repository"
	"practice-manager/internal/practice"
	"practice-manager/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	ToggleStatus(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	ids             practice.IDGenerator
	appointmentRepo repository.AppointmentRepository
	metrics         *metrics.Collector
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ids practice.IDGenerator,
	appointmentRepo repository.AppointmentRepository,
	metrics *metrics.Collector,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		ids:             ids,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointment, err := practice.NewAppointment(u.ids, req.PatientName, date, req.Time, req.Type)
	if err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), &appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.metrics.AppointmentBooked()

	return converter.AppointmentToResponse(&appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ToggleStatus flips SCHEDULED and COMPLETED inside one transaction
func (u *appointmentUsecase) ToggleStatus(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	toggled := practice.ToggleStatus(*appointment)

	affected, err := u.appointmentRepo.UpdateStatus(tx, toggled.ID, toggled.Status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.AppointmentToggled(string(toggled.Status))

	return converter.AppointmentToResponse(&toggled), nil
}
