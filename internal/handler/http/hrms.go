package http

import (
	"encoding/json"
	"net/http"

	"github.com/synczenith/synczenith-backend-go/internal/domain/hrms"
	"github.com/synczenith/synczenith-backend-go/internal/handler/http/response"
)

type HRMSHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type hrmsHandlerImpl struct {
	hrmsService hrms.HRMSService
}

func NewHRMSHandler(hrmsService hrms.HRMSService) HRMSHandler {
	return &hrmsHandlerImpl{hrmsService: hrmsService}
}

func (h *hrmsHandlerImpl) Connect(w http.ResponseWriter, r *http.Request) {
	var req hrms.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.hrmsService.Connect(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *hrmsHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.hrmsService.Sync(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
