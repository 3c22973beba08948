package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/usecase"
	"practice-manager/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentHandler_CreateAppointment(t *testing.T) {
	called := false
	h := NewAppointmentHandler(&stubAppointmentUsecase{
		CreateFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			called = true
			return &dto.AppointmentResponse{ID: "a1", PatientName: req.PatientName, Date: req.Date, Time: req.Time, Status: "SCHEDULED"}, nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, jsonRequest(t, http.MethodPost, "/api/v1/appointments", map[string]string{
		"patient_name": "Ana", "date": "2026-03-10", "time": "09:30", "type": "Consulta",
	}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, called)

	called = false
	rec = httptest.NewRecorder()
	h.CreateAppointment(rec, jsonRequest(t, http.MethodPost, "/api/v1/appointments", map[string]string{
		"patient_name": "Ana", "date": "10/03/2026", "time": "09:30",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
	assert.Equal(t, map[string]any{"date": "date must match the format 2006-01-02"}, decodeResponse(t, rec).Error)
}

func TestAppointmentHandler_CreateAppointment_InvalidDate(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{
		CreateFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrInvalidDate
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, jsonRequest(t, http.MethodPost, "/api/v1/appointments", map[string]string{
		"patient_name": "Ana", "date": "2026-03-10", "time": "09:30",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandler_ToggleStatus(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{
		ToggleFn: func(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
			if id != "a1" {
				return nil, usecase.ErrAppointmentNotFound
			}
			return &dto.AppointmentResponse{ID: id, Status: "COMPLETED"}, nil
		},
	}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.ToggleStatus(rec, withVars(httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/a1/toggle", nil), map[string]string{"id": "a1"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.(map[string]any)
	assert.Equal(t, "COMPLETED", data["status"])

	rec = httptest.NewRecorder()
	h.ToggleStatus(rec, withVars(httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/zz/toggle", nil), map[string]string{"id": "zz"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
