package converter

import (
	"practice-manager/internal/delivery/dto"
	"practice-manager/internal/domain/entity"
	"practice-manager/internal/practice"
)

func SettingsToResponse(settings *entity.AppSettings) *dto.SettingsResponse {
	if settings == nil {
		return nil
	}

	return &dto.SettingsResponse{
		ClinicName:       settings.ClinicName,
		DoctorName:       settings.DoctorName,
		ProfessionalRole: settings.ProfessionalRole,
		ProfileImage:     settings.ProfileImage,
		WhatsApp:         settings.WhatsApp,
		Instagram:        settings.Instagram,
		MonthlyGoal:      settings.MonthlyGoal,
		UpdatedAt:        settings.UpdatedAt,
	}
}

// SettingsRequestToInput maps the request onto the core replacement input
func SettingsRequestToInput(req *dto.UpdateSettingsRequest) entity.SettingsInput {
	return entity.SettingsInput{
		ClinicName:       req.ClinicName,
		DoctorName:       req.DoctorName,
		ProfessionalRole: req.ProfessionalRole,
		ProfileImage:     req.ProfileImage,
		WhatsApp:         req.WhatsApp,
		Instagram:        req.Instagram,
		MonthlyGoal:      req.MonthlyGoal,
	}
}

func DashboardToResponse(d practice.Dashboard) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Date:            d.Today.Format(dateLayout),
		Income:          d.Totals.Income,
		Expense:         d.Totals.Expense,
		Balance:         d.Balance,
		ScheduledToday:  d.ScheduledToday,
		PatientCount:    d.PatientCount,
		MonthlyGoal:     d.MonthlyGoal,
		ProgressPercent: d.ProgressPercent,
		Recent:          AppointmentsToResponses(d.Recent),
	}
}
