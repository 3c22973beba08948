package usecase

import (
	"context"
	"errors"

	"practice-manager/internal/converter"
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/domain/repository"
	"practice-manager/internal/practice"
	"practice-manager/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	AdmitPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, search string) (*dto.PatientListResponse, error)
	AppendHistoryEntry(ctx context.Context, patientID string, req *dto.AppendHistoryRequest) (*dto.PatientResponse, error)
	UpdateDemographicField(ctx context.Context, patientID string, field string, req *dto.UpdatePatientFieldRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	timeline    *practice.Timeline
	patientRepo repository.PatientRepository
	metrics     *metrics.Collector
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	timeline *practice.Timeline,
	patientRepo repository.PatientRepository,
	metrics *metrics.Collector,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		timeline:    timeline,
		patientRepo: patientRepo,
		metrics:     metrics,
	}
}

func (u *patientUsecase) AdmitPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.timeline.AdmitPatient(entity.PatientFields{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), &patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.metrics.PatientAdmitted()
	u.log.Infof("Patient %s admitted", patient.ID)

	return converter.PatientToResponse(&patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	matches := practice.SearchPatients(patients, search)

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(matches),
		Total:    len(matches),
	}, nil
}

// AppendHistoryEntry stores a new clinical note at the front of the timeline.
// The patient row stays locked from the read to the commit, so concurrent
// appends to one patient take turns and each sees the latest seq.
func (u *patientUsecase) AppendHistoryEntry(ctx context.Context, patientID string, req *dto.AppendHistoryRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByIDForUpdate(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	updated, err := u.timeline.AppendHistoryEntry(*patient, entity.HistoryCategory(req.Category), req.Content)
	if err != nil {
		return nil, err
	}

	entry := updated.History[0]
	if err := u.patientRepo.AppendHistoryEntry(tx, &entry); err != nil {
		u.log.Warnf("Failed to append history entry: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.HistoryAppended(string(entry.Category))

	return converter.PatientToResponse(&updated), nil
}

func (u *patientUsecase) UpdateDemographicField(ctx context.Context, patientID string, field string, req *dto.UpdatePatientFieldRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByIDForUpdate(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	updated, err := practice.UpdateDemographicField(*patient, entity.DemographicField(field), req.Value)
	if err != nil {
		return nil, err
	}

	if err := u.patientRepo.UpdateDemographics(tx, &updated); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(&updated), nil
}
