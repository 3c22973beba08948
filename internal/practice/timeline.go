package practice

import (
	"strings"

	"practice-manager/internal/domain/entity"
	"practice-manager/pkg/validator"
)

// Timeline admits patients and maintains their clinical history.
// It keeps no state between calls.
type Timeline struct {
	clock     Clock
	ids       IDGenerator
	validator *validator.CustomValidator
}

func NewTimeline(clock Clock, ids IDGenerator, validator *validator.CustomValidator) *Timeline {
	return &Timeline{
		clock:     clock,
		ids:       ids,
		validator: validator,
	}
}

// AdmitPatient creates a patient with a fresh id and an empty history.
// Name and phone must be non-blank after trimming.
func (t *Timeline) AdmitPatient(fields entity.PatientFields) (entity.Patient, error) {
	fields = entity.PatientFields{
		Name:      strings.TrimSpace(fields.Name),
		Phone:     strings.TrimSpace(fields.Phone),
		Email:     strings.TrimSpace(fields.Email),
		BirthDate: strings.TrimSpace(fields.BirthDate),
		Notes:     fields.Notes,
	}

	if err := t.validator.Validate(&fields); err != nil {
		return entity.Patient{}, toValidationError(err)
	}

	return entity.Patient{
		ID:        t.ids.NewID(),
		Name:      fields.Name,
		Phone:     fields.Phone,
		Email:     fields.Email,
		BirthDate: fields.BirthDate,
		Notes:     fields.Notes,
		History:   []entity.HistoryEntry{},
	}, nil
}

// AppendHistoryEntry stamps a new entry with today's date and places it at
// the front of the patient's history. The input patient is not modified.
func (t *Timeline) AppendHistoryEntry(patient entity.Patient, category entity.HistoryCategory, content string) (entity.Patient, error) {
	if !category.IsValid() {
		return entity.Patient{}, entity.NewValidationError("category", "must be one of CONSULTATION EXAM PROCEDURE OBSERVATION")
	}
	if strings.TrimSpace(content) == "" {
		return entity.Patient{}, entity.NewValidationError("content", "is required")
	}

	entry := entity.HistoryEntry{
		ID:        t.ids.NewID(),
		PatientID: patient.ID,
		Seq:       patient.NextSeq(),
		Date:      calendarDate(t.clock.Now()),
		Category:  category,
		Content:   content,
	}

	history := make([]entity.HistoryEntry, 0, len(patient.History)+1)
	history = append(history, entry)
	history = append(history, patient.History...)

	patient.History = history
	return patient, nil
}

// UpdateDemographicField replaces one editable field. Values are accepted
// verbatim; email format is not checked here.
func UpdateDemographicField(patient entity.Patient, field entity.DemographicField, value string) (entity.Patient, error) {
	switch field {
	case entity.FieldPhone:
		patient.Phone = value
	case entity.FieldBirthDate:
		patient.BirthDate = value
	case entity.FieldEmail:
		patient.Email = value
	case entity.FieldNotes:
		patient.Notes = value
	default:
		return entity.Patient{}, entity.NewValidationError("field", "must be one of phone birthDate email notes")
	}

	patient.History = copyHistory(patient.History)
	return patient, nil
}

// SearchPatients filters by case-insensitive name match or phone substring.
// An empty term matches everyone.
func SearchPatients(patients []entity.Patient, term string) []entity.Patient {
	term = strings.TrimSpace(term)
	result := make([]entity.Patient, 0, len(patients))
	if term == "" {
		return append(result, patients...)
	}

	lowered := strings.ToLower(term)
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), lowered) || strings.Contains(p.Phone, term) {
			result = append(result, p)
		}
	}
	return result
}

func copyHistory(history []entity.HistoryEntry) []entity.HistoryEntry {
	if history == nil {
		return nil
	}
	out := make([]entity.HistoryEntry, len(history))
	copy(out, history)
	return out
}

var _ validator.FieldError = (*entity.ValidationError)(nil)

// toValidationError reports the first struct validation failure as the
// core's ValidationError.
func toValidationError(err error) error {
	if field, message, ok := validator.FirstFieldError(err); ok {
		return entity.NewValidationError(field, message)
	}
	return err
}
