package handler

import (
	"encoding/json"
	"net/http"

	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/usecase"
	"practice-manager/pkg/response"
)

type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
	}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.GetSettings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

// ReplaceSettings never rejects a goal; unreadable values are stored as 0
func (h *SettingsHandler) ReplaceSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	settings, err := h.settingsUsecase.ReplaceSettings(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings updated successfully", settings)
}

func (h *SettingsHandler) UpdateMonthlyGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGoalRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	settings, err := h.settingsUsecase.UpdateMonthlyGoal(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update monthly goal")
		return
	}

	response.Success(w, http.StatusOK, "Monthly goal updated successfully", settings)
}
