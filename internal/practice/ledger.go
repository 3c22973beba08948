package practice

import (
	"strings"

	"practice-manager/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Totals is the income/expense split of a set of financial records
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Balance is income minus expense
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Aggregate sums revenue (INCOME and PIX) and expenses. Summation is exact,
// so the result does not depend on record order. Records with a type outside
// the closed set are skipped.
func Aggregate(records []entity.FinancialRecord) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}

	for _, r := range records {
		switch r.Type {
		case entity.FinancialIncome, entity.FinancialPix:
			totals.Income = totals.Income.Add(r.Amount)
		case entity.FinancialExpense:
			totals.Expense = totals.Expense.Add(r.Amount)
		}
	}

	return totals
}

// NewFinancialRecord builds an immutable ledger entry dated on the clock's
// current day. The amount must not be negative and is rounded to cents.
func NewFinancialRecord(clock Clock, ids IDGenerator, kind entity.FinancialType, amount decimal.Decimal, description string) (entity.FinancialRecord, error) {
	if !kind.IsValid() {
		return entity.FinancialRecord{}, entity.NewValidationError("type", "must be one of INCOME EXPENSE PIX")
	}
	if amount.IsNegative() {
		return entity.FinancialRecord{}, entity.NewValidationError("amount", "must be greater than or equal to 0")
	}
	amount = amount.Round(entity.MoneyScale)
	if amount.GreaterThan(entity.MaxMoney) {
		return entity.FinancialRecord{}, entity.NewValidationError("amount", "must be less than or equal to "+entity.MaxMoney.StringFixed(entity.MoneyScale))
	}

	return entity.FinancialRecord{
		ID:          ids.NewID(),
		Type:        kind,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        calendarDate(clock.Now()),
	}, nil
}
