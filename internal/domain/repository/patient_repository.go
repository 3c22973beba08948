package repository

import (
	"practice-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id string) (*entity.Patient, error)
	FindByIDForUpdate(db *gorm.DB, id string) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	UpdateDemographics(db *gorm.DB, patient *entity.Patient) error
	AppendHistoryEntry(db *gorm.DB, entry *entity.HistoryEntry) error
}
