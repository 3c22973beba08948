package repository

import (
	"errors"

	"practice-manager/internal/domain/entity"
	domainRepo "practice-manager/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

// newestFirst keeps preloaded history in timeline order
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("seq DESC")
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id string) (*entity.Patient, error) {
	return r.findByID(db, id)
}

// FindByIDForUpdate locks the patient row until the surrounding transaction
// ends. Writers that derive the next history seq must hold this lock.
func (r *patientRepository) FindByIDForUpdate(db *gorm.DB, id string) (*entity.Patient, error) {
	return r.findByID(db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *patientRepository) findByID(db *gorm.DB, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("History", newestFirst).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if patient.History == nil {
		patient.History = []entity.HistoryEntry{}
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("History", newestFirst).Order("created_at ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// UpdateDemographics writes the editable fields, including empty values
func (r *patientRepository) UpdateDemographics(db *gorm.DB, patient *entity.Patient) error {
	return db.Model(patient).
		Select("phone", "birth_date", "email", "notes", "updated_at").
		Updates(patient).Error
}

func (r *patientRepository) AppendHistoryEntry(db *gorm.DB, entry *entity.HistoryEntry) error {
	return db.Create(entry).Error
}
