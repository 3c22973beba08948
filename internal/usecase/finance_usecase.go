package usecase

import (
	"context"

	"practice-manager/internal/converter"
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/domain/repository"
	"practice-manager/internal/practice"
	"practice-manager/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FinanceUsecase interface {
	RecordTransaction(ctx context.Context, req *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error)
	ListRecords(ctx context.Context) (*dto.FinancialRecordListResponse, error)
	GetSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error)
}

type financeUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clock      practice.Clock
	ids        practice.IDGenerator
	recordRepo repository.FinancialRecordRepository
	metrics    *metrics.Collector
}

func NewFinanceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock practice.Clock,
	ids practice.IDGenerator,
	recordRepo repository.FinancialRecordRepository,
	metrics *metrics.Collector,
) FinanceUsecase {
	return &financeUsecase{
		db:         db,
		log:        log,
		clock:      clock,
		ids:        ids,
		recordRepo: recordRepo,
		metrics:    metrics,
	}
}

func (u *financeUsecase) RecordTransaction(ctx context.Context, req *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	record, err := practice.NewFinancialRecord(u.clock, u.ids, entity.FinancialType(req.Type), req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	if err := u.recordRepo.Create(u.db.WithContext(ctx), &record); err != nil {
		u.log.Warnf("Failed to create financial record: %+v", err)
		return nil, err
	}

	u.metrics.FinancialRecorded(string(record.Type))

	return converter.FinancialRecordToResponse(&record), nil
}

func (u *financeUsecase) ListRecords(ctx context.Context) (*dto.FinancialRecordListResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find financial records: %+v", err)
		return nil, err
	}

	return &dto.FinancialRecordListResponse{
		Records: converter.FinancialRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *financeUsecase) GetSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find financial records: %+v", err)
		return nil, err
	}

	return converter.TotalsToSummary(practice.Aggregate(records)), nil
}
