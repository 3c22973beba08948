package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/usecase"
	"practice-manager/pkg/response"
	"practice-manager/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.AdmitPatient(r.Context(), &req)
	if err != nil {
		if entity.IsValidationError(err) {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
		response.InternalServerError(w, "Failed to admit patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient admitted successfully", patient)
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.patientUsecase.GetPatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) AppendHistoryEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.AppendHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.AppendHistoryEntry(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case entity.IsValidationError(err):
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
		default:
			response.InternalServerError(w, "Failed to append history entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "History entry added successfully", patient)
}

func (h *PatientHandler) UpdateDemographicField(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdatePatientFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	patient, err := h.patientUsecase.UpdateDemographicField(r.Context(), vars["id"], vars["field"], &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case entity.IsValidationError(err):
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}
