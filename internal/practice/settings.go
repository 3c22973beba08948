package practice

import (
	"strings"

	"practice-manager/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// DefaultSettings is the settings record used before anything was saved
func DefaultSettings() entity.AppSettings {
	return entity.AppSettings{
		ID:               entity.SettingsRowID,
		ClinicName:       "Consultório",
		ProfessionalRole: "Administrador",
		MonthlyGoal:      decimal.Zero,
	}
}

// ReplaceSettings builds the next canonical settings record. String fields
// present in incoming replace the current ones; the monthly goal always comes
// from incoming and is coerced with NormalizeGoal, so a missing goal becomes 0.
func ReplaceSettings(current entity.AppSettings, incoming entity.SettingsInput) entity.AppSettings {
	next := current
	next.ID = entity.SettingsRowID

	assign(&next.ClinicName, incoming.ClinicName)
	assign(&next.DoctorName, incoming.DoctorName)
	assign(&next.ProfessionalRole, incoming.ProfessionalRole)
	assign(&next.ProfileImage, incoming.ProfileImage)
	assign(&next.WhatsApp, incoming.WhatsApp)
	assign(&next.Instagram, incoming.Instagram)

	next.MonthlyGoal = NormalizeGoal(incoming.MonthlyGoal)
	return next
}

// UpdateMonthlyGoal changes only the goal, keeping every other field
func UpdateMonthlyGoal(current entity.AppSettings, raw any) entity.AppSettings {
	next := current
	next.ID = entity.SettingsRowID
	next.MonthlyGoal = NormalizeGoal(raw)
	return next
}

// NormalizeGoal parses a goal leniently. Numbers and numeric strings are
// accepted; nil, garbage, NaN, infinities and negative values become 0.
// The result is rounded to cents and capped at entity.MaxMoney.
func NormalizeGoal(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return clampGoal(v)
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return clampGoal(*v)
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return decimal.Zero
	}

	goal, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return clampGoal(goal)
}

func clampGoal(goal decimal.Decimal) decimal.Decimal {
	if goal.IsNegative() {
		return decimal.Zero
	}
	goal = goal.Round(entity.MoneyScale)
	if goal.GreaterThan(entity.MaxMoney) {
		return entity.MaxMoney
	}
	return goal
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
