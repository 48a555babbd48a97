package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/savings-server/internal/logging"
)

// pinger is the slice of the database handle the health check needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB pinger
}

func NewHandler(db pinger) Handler {
	return Handler{DB: db}
}

// Healthz is the liveness probe: the process is up.
func (h *Handler) Healthz(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("healthz: method not GET")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Checkz is the readiness probe: the database answers a ping.
func (h *Handler) Checkz(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("checkz: method not GET")
	}

	if err := h.DB.PingContext(req.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Service health checked"))
	return nil
}
