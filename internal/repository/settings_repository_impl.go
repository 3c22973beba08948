package repository

import (
	"errors"

	"practice-manager/internal/domain/entity"
	domainRepo "practice-manager/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct{}

func NewSettingsRepository() domainRepo.SettingsRepository {
	return &settingsRepository{}
}

// Get returns nil when nothing was saved yet
func (r *settingsRepository) Get(db *gorm.DB) (*entity.AppSettings, error) {
	var settings entity.AppSettings
	err := db.Where("id = ?", entity.SettingsRowID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Save replaces the settings row wholesale
func (r *settingsRepository) Save(db *gorm.DB, settings *entity.AppSettings) error {
	settings.ID = entity.SettingsRowID
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
