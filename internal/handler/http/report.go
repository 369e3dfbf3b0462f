package http

import (
	"net/http"

	"github.com/synczenith/synczenith-backend-go/internal/domain/report"
	"github.com/synczenith/synczenith-backend-go/internal/handler/http/response"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
)

type ReportHandler interface {
	GetPayrollSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetPayrollSummary handles GET /reports/summary?month=YYYY-MM
func (h *reportHandlerImpl) GetPayrollSummary(w http.ResponseWriter, r *http.Request) {
	var filter report.SummaryFilter
	if month := r.URL.Query().Get("month"); month != "" {
		if rng, ok := period.ParseFilter(month); ok {
			filter.Month = &rng
		}
	}

	result, err := h.reportService.GetPayrollSummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
