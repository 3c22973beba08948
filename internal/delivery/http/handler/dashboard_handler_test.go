package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"practice-manager/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubDashboardUsecase struct {
	GetFn func(ctx context.Context) (*dto.DashboardResponse, error)
}

func (s *stubDashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	return s.GetFn(ctx)
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	h := NewDashboardHandler(&stubDashboardUsecase{
		GetFn: func(ctx context.Context) (*dto.DashboardResponse, error) {
			return &dto.DashboardResponse{
				Date:            "2026-03-10",
				Income:          decimal.NewFromInt(1500),
				MonthlyGoal:     decimal.NewFromInt(2000),
				ProgressPercent: 75,
				Recent:          []dto.AppointmentResponse{},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeResponse(t, rec).Data.(map[string]any)
	assert.Equal(t, float64(75), data["progress_percent"])
	assert.Equal(t, "2026-03-10", data["date"])
}
