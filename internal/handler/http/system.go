package http

import (
	"net/http"

	"github.com/synczenith/synczenith-backend-go/internal/handler/http/response"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document"
)

type SystemHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Schema(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	store  docstore.Store
	driver string
}

func NewSystemHandler(store docstore.Store, driver string) SystemHandler {
	return &systemHandlerImpl{store: store, driver: driver}
}

type HealthResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	Driver           string   `json:"driver"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Error            string   `json:"error,omitempty"`
}

func (h *systemHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "SyncZenith Backend Running"})
}

// Health reports store reachability. It always answers 200 so the backend
// itself can be told apart from its database.
func (h *systemHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	result := HealthResponse{
		Backend:          "running",
		Database:         "unavailable",
		Driver:           h.driver,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if err := h.store.Ping(r.Context()); err != nil {
		result.Error = err.Error()
		response.Success(w, result)
		return
	}
	result.Database = "available"
	result.ConnectionStatus = "connected"

	collections, err := h.store.Collections(r.Context())
	if err != nil {
		result.Error = err.Error()
	} else {
		result.Collections = collections
	}

	response.Success(w, result)
}

func (h *systemHandlerImpl) Schema(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string][]string{"collections": document.Collections})
}
