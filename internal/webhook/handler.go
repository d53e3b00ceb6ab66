// ABOUTME: HTTP endpoint for webhook deliveries.
// ABOUTME: Acknowledges 200 regardless of outcome unless configured to propagate.

package webhook

import (
	"io"
	"log/slog"
	"net/http"
)

// maxPayloadBytes bounds how much of a delivery body is read.
const maxPayloadBytes = 1 << 20

// Handler is the HTTP endpoint receiving webhook deliveries.
type Handler struct {
	router *Router
	// propagate turns processing failures into 500 responses. The platform
	// contract expects a 200 regardless, so this is off in production and
	// on where delivery retries are wanted.
	propagate bool
	logger    *slog.Logger
}

// NewHandler creates the webhook HTTP handler.
func NewHandler(router *Router, propagateFailures bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		router:    router,
		propagate: propagateFailures,
		logger:    logger.With("component", "webhook"),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Error("reading request body failed", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	h.logger.Info("webhook delivery received", "bytes", len(body))

	if err := h.router.HandleInbound(r.Context(), body); err != nil && h.propagate {
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("{}"))
}
