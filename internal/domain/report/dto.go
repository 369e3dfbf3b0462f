package report

import (
	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
)

type SummaryFilter struct {
	Month *period.Range
}

type SummaryCounts struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
}

type SummaryTotals struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

type PayrollSummaryResponse struct {
	Counts SummaryCounts `json:"counts"`
	Totals SummaryTotals `json:"totals"`
}
