package converter

import (
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// HistoryEntryToResponse converts a HistoryEntry entity to HistoryEntryResponse DTO
func HistoryEntryToResponse(entry entity.HistoryEntry) dto.HistoryEntryResponse {
	return dto.HistoryEntryResponse{
		ID:       entry.ID,
		Date:     entry.Date.Format(dateLayout),
		Category: string(entry.Category),
		Content:  entry.Content,
	}
}

// PatientToResponse converts a Patient entity, history included, to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	history := make([]dto.HistoryEntryResponse, len(patient.History))
	for i, entry := range patient.History {
		history[i] = HistoryEntryToResponse(entry)
	}

	response := &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Phone:     patient.Phone,
		Email:     patient.Email,
		BirthDate: patient.BirthDate,
		Notes:     patient.Notes,
		History:   history,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}

	if latest, ok := patient.LatestEntry(); ok {
		lastVisit := HistoryEntryToResponse(latest)
		response.LastVisit = &lastVisit
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
