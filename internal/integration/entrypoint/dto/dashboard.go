package dto

import (
	"github.com/lifetrack/backend/internal/application/usecase/dashboard"
)

// ExpenseSummaryResponse represents spend totals bucketed by time window.
type ExpenseSummaryResponse struct {
	Today     string `json:"today"`
	ThisWeek  string `json:"this_week"`
	ThisMonth string `json:"this_month"`
	ThisYear  string `json:"this_year"`
}

// ActivityTotalsResponse represents activity totals for one time window.
type ActivityTotalsResponse struct {
	DurationMinutes  int `json:"duration_minutes"`
	EnergyKilojoules int `json:"energy_kilojoules"`
	Steps            int `json:"steps"`
}

// ActivitySummaryResponse represents activity totals bucketed by time window.
type ActivitySummaryResponse struct {
	Today     ActivityTotalsResponse `json:"today"`
	ThisWeek  ActivityTotalsResponse `json:"this_week"`
	ThisMonth ActivityTotalsResponse `json:"this_month"`
	ThisYear  ActivityTotalsResponse `json:"this_year"`
}

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	Expenses   ExpenseSummaryResponse  `json:"expenses"`
	Activities ActivitySummaryResponse `json:"activities"`
}

// ToSummaryResponse converts dashboard summary output to a response DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Expenses: ExpenseSummaryResponse{
			Today:     output.Expenses.Today.String(),
			ThisWeek:  output.Expenses.ThisWeek.String(),
			ThisMonth: output.Expenses.ThisMonth.String(),
			ThisYear:  output.Expenses.ThisYear.String(),
		},
		Activities: ActivitySummaryResponse{
			Today:     toActivityTotalsResponse(output.Activities.Today),
			ThisWeek:  toActivityTotalsResponse(output.Activities.ThisWeek),
			ThisMonth: toActivityTotalsResponse(output.Activities.ThisMonth),
			ThisYear:  toActivityTotalsResponse(output.Activities.ThisYear),
		},
	}
}

func toActivityTotalsResponse(t dashboard.ActivityTotals) ActivityTotalsResponse {
	return ActivityTotalsResponse{
		DurationMinutes:  t.DurationMinutes,
		EnergyKilojoules: t.EnergyKilojoules,
		Steps:            t.Steps,
	}
}
