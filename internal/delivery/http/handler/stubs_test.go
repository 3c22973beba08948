package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"practice-manager/internal/delivery/dto"
	"practice-manager/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type stubPatientUsecase struct {
	AdmitFn  func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetFn    func(ctx context.Context, patientID string) (*dto.PatientResponse, error)
	ListFn   func(ctx context.Context, search string) (*dto.PatientListResponse, error)
	AppendFn func(ctx context.Context, patientID string, req *dto.AppendHistoryRequest) (*dto.PatientResponse, error)
	UpdateFn func(ctx context.Context, patientID, field string, req *dto.UpdatePatientFieldRequest) (*dto.PatientResponse, error)
}

func (s *stubPatientUsecase) AdmitPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return s.AdmitFn(ctx, req)
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error) {
	return s.GetFn(ctx, patientID)
}

func (s *stubPatientUsecase) ListPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	return s.ListFn(ctx, search)
}

func (s *stubPatientUsecase) AppendHistoryEntry(ctx context.Context, patientID string, req *dto.AppendHistoryRequest) (*dto.PatientResponse, error) {
	return s.AppendFn(ctx, patientID, req)
}

func (s *stubPatientUsecase) UpdateDemographicField(ctx context.Context, patientID string, field string, req *dto.UpdatePatientFieldRequest) (*dto.PatientResponse, error) {
	return s.UpdateFn(ctx, patientID, field, req)
}

type stubAppointmentUsecase struct {
	CreateFn func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListFn   func(ctx context.Context) (*dto.AppointmentListResponse, error)
	ToggleFn func(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error)
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.CreateFn(ctx, req)
}

func (s *stubAppointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.ListFn(ctx)
}

func (s *stubAppointmentUsecase) ToggleStatus(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error) {
	return s.ToggleFn(ctx, appointmentID)
}

type stubFinanceUsecase struct {
	RecordFn  func(ctx context.Context, req *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error)
	ListFn    func(ctx context.Context) (*dto.FinancialRecordListResponse, error)
	SummaryFn func(ctx context.Context) (*dto.FinancialSummaryResponse, error)
}

func (s *stubFinanceUsecase) RecordTransaction(ctx context.Context, req *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	return s.RecordFn(ctx, req)
}

func (s *stubFinanceUsecase) ListRecords(ctx context.Context) (*dto.FinancialRecordListResponse, error) {
	return s.ListFn(ctx)
}

func (s *stubFinanceUsecase) GetSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error) {
	return s.SummaryFn(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}
