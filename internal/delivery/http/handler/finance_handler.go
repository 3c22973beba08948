package handler

import (
	"encoding/json"
	"net/http"

	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/usecase"
	"practice-manager/pkg/response"
	"practice-manager/pkg/validator"
)

type FinanceHandler struct {
	financeUsecase usecase.FinanceUsecase
	validator      *validator.CustomValidator
}

func NewFinanceHandler(financeUsecase usecase.FinanceUsecase, validator *validator.CustomValidator) *FinanceHandler {
	return &FinanceHandler{
		financeUsecase: financeUsecase,
		validator:      validator,
	}
}

func (h *FinanceHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFinancialRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.financeUsecase.RecordTransaction(r.Context(), &req)
	if err != nil {
		if entity.IsValidationError(err) {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
		response.InternalServerError(w, "Failed to record transaction")
		return
	}

	response.Success(w, http.StatusCreated, "Transaction recorded successfully", record)
}

func (h *FinanceHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.financeUsecase.ListRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get financial records")
		return
	}

	response.Success(w, http.StatusOK, "Financial records retrieved successfully", records)
}

func (h *FinanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.financeUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get financial summary")
		return
	}

	response.Success(w, http.StatusOK, "Financial summary retrieved successfully", summary)
}
