package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/synczenith/synczenith-backend-go/internal/domain/payslip"
	"github.com/synczenith/synczenith-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

// List handles GET /payslips?employeeId=
func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payslip.PayslipFilter
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	slips, err := h.payslipService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, slips)
}

func (h *payslipHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var req payslip.SendPayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payslipService.SendPayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
