package dto

import (
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// ReportParams are the optional inclusive date bounds of a report.
type ReportParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToDateRange parses the bounds. An empty bound is open.
func (p ReportParams) ToDateRange() (domain.DateRange, error) {
	var r domain.DateRange
	if p.StartDate != "" {
		t, err := time.Parse(DateLayout, p.StartDate)
		if err != nil {
			return r, apperrors.NewValidationError("invalid startDate %q", p.StartDate)
		}
		r.Start = &t
	}
	if p.EndDate != "" {
		t, err := time.Parse(DateLayout, p.EndDate)
		if err != nil {
			return r, apperrors.NewValidationError("invalid endDate %q", p.EndDate)
		}
		r.End = &t
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return r, apperrors.NewValidationError("endDate must not be before startDate")
	}
	return r, nil
}

// TrialBalanceResponse is the trial balance with the period it covers.
type TrialBalanceResponse struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	domain.TrialBalance
}

// IncomeStatementResponse is the income statement with the period it covers.
type IncomeStatementResponse struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	domain.IncomeStatement
}

// AnomaliesResponse wraps the diagnostic findings.
type AnomaliesResponse struct {
	Findings []domain.Finding `json:"findings"`
}

// ToTrialBalanceResponse attaches the period to a trial balance.
func ToTrialBalanceResponse(tb domain.TrialBalance, p ReportParams) TrialBalanceResponse {
	return TrialBalanceResponse{StartDate: p.StartDate, EndDate: p.EndDate, TrialBalance: tb}
}

// ToIncomeStatementResponse attaches the period to an income statement.
func ToIncomeStatementResponse(is domain.IncomeStatement, p ReportParams) IncomeStatementResponse {
	return IncomeStatementResponse{StartDate: p.StartDate, EndDate: p.EndDate, IncomeStatement: is}
}
