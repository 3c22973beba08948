package converter

import (
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/practice"
)

func FinancialRecordToResponse(record *entity.FinancialRecord) *dto.FinancialRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.FinancialRecordResponse{
		ID:          record.ID,
		Type:        string(record.Type),
		Amount:      record.Amount,
		Description: record.Description,
		Date:        record.Date.Format(dateLayout),
		CreatedAt:   record.CreatedAt,
	}
}

func FinancialRecordsToResponses(records []entity.FinancialRecord) []dto.FinancialRecordResponse {
	responses := make([]dto.FinancialRecordResponse, len(records))
	for i := range records {
		responses[i] = *FinancialRecordToResponse(&records[i])
	}
	return responses
}

func TotalsToSummary(totals practice.Totals) *dto.FinancialSummaryResponse {
	return &dto.FinancialSummaryResponse{
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: totals.Balance(),
	}
}
