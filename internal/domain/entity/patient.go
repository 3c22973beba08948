package entity

import (
	"time"
)

// HistoryCategory tags a clinical history entry
type HistoryCategory string

const (
	HistoryConsultation HistoryCategory = "CONSULTATION"
	HistoryExam         HistoryCategory = "EXAM"
	HistoryProcedure    HistoryCategory = "PROCEDURE"
	HistoryObservation  HistoryCategory = "OBSERVATION"
)

func (c HistoryCategory) IsValid() bool {
	switch c {
	case HistoryConsultation, HistoryExam, HistoryProcedure, HistoryObservation:
		return true
	}
	return false
}

// DemographicField names the patient fields that can be edited one at a time
type DemographicField string

const (
	FieldPhone     DemographicField = "phone"
	FieldBirthDate DemographicField = "birthDate"
	FieldEmail     DemographicField = "email"
	FieldNotes     DemographicField = "notes"
)

func (f DemographicField) IsValid() bool {
	switch f {
	case FieldPhone, FieldBirthDate, FieldEmail, FieldNotes:
		return true
	}
	return false
}

// Patient is a practice patient together with its clinical timeline.
// History is kept newest-first.
type Patient struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone     string    `gorm:"type:varchar(40);not null;index" json:"phone"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	BirthDate string    `gorm:"type:varchar(20)" json:"birth_date,omitempty"` // Format: YYYY-MM-DD, not enforced
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	History []HistoryEntry `gorm:"foreignKey:PatientID" json:"history"`
}

func (Patient) TableName() string {
	return "patients"
}

// LatestEntry returns the most recent history entry, if any
func (p *Patient) LatestEntry() (HistoryEntry, bool) {
	if len(p.History) == 0 {
		return HistoryEntry{}, false
	}
	return p.History[0], true
}

// NextSeq returns the insertion counter for the next history entry
func (p *Patient) NextSeq() int64 {
	var max int64
	for _, h := range p.History {
		if h.Seq > max {
			max = h.Seq
		}
	}
	return max + 1
}

// HistoryEntry is an immutable clinical note owned by a patient.
// Seq grows with every append and breaks ties between entries of the same date.
type HistoryEntry struct {
	ID        string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	PatientID string          `gorm:"type:varchar(64);not null;index" json:"patient_id"`
	Seq       int64           `gorm:"not null" json:"seq"`
	Date      time.Time       `gorm:"type:date;not null" json:"date"`
	Category  HistoryCategory `gorm:"type:varchar(20);not null" json:"category"`
	Content   string          `gorm:"type:text;not null" json:"content"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}

// PatientFields is the admission form for a new patient
type PatientFields struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
}
