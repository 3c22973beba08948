package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits stored for money columns
const MoneyScale = 2

// MaxMoney is the largest value a DECIMAL(14,2) money column holds
var MaxMoney = decimal.RequireFromString("999999999999.99")

// FinancialType classifies a ledger entry
type FinancialType string

const (
	FinancialIncome  FinancialType = "INCOME"
	FinancialExpense FinancialType = "EXPENSE"
	FinancialPix     FinancialType = "PIX"
)

func (t FinancialType) IsValid() bool {
	switch t {
	case FinancialIncome, FinancialExpense, FinancialPix:
		return true
	}
	return false
}

// IsRevenue reports whether records of this type count as income.
// PIX transfers are revenue.
func (t FinancialType) IsRevenue() bool {
	return t == FinancialIncome || t == FinancialPix
}

// FinancialRecord is an immutable ledger entry. Amount is never negative;
// the direction of money is implied by Type.
type FinancialRecord struct {
	ID          string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Type        FinancialType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (FinancialRecord) TableName() string {
	return "financial_records"
}
