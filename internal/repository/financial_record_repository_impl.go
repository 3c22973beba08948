package repository

import (
	"practice-manager/internal/domain/entity"
	domainRepo "practice-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type financialRecordRepository struct{}

func NewFinancialRecordRepository() domainRepo.FinancialRecordRepository {
	return &financialRecordRepository{}
}

func (r *financialRecordRepository) Create(db *gorm.DB, record *entity.FinancialRecord) error {
	return db.Create(record).Error
}

func (r *financialRecordRepository) FindAll(db *gorm.DB) ([]entity.FinancialRecord, error) {
	var records []entity.FinancialRecord
	err := db.Order("date DESC, created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
