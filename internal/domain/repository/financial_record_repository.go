package repository

import (
	"practice-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type FinancialRecordRepository interface {
	Create(db *gorm.DB, record *entity.FinancialRecord) error
	FindAll(db *gorm.DB) ([]entity.FinancialRecord, error)
}
