package repository

import (
	"practice-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id string) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id string, status entity.AppointmentStatus) (int64, error)
}
