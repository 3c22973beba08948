package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateFinancialRecordRequest struct {
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE PIX"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Response DTOs

type FinancialRecordResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type FinancialRecordListResponse struct {
	Records []FinancialRecordResponse `json:"records"`
	Total   int                       `json:"total"`
}

type FinancialSummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
