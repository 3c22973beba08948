package repository

import (
	"practice-manager/internal/domain/entity"

	"gorm.io/gorm"
)

// SettingsRepository stores the single settings row
type SettingsRepository interface {
	Get(db *gorm.DB) (*entity.AppSettings, error)
	Save(db *gorm.DB, settings *entity.AppSettings) error
}
