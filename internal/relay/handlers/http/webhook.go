package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/w-h-a/deploy-relay/internal/relay/services/relayer"
)

type Webhook struct {
	parser      *Parser
	relayer     *relayer.Service
	destination string
}

func (h *Webhook) PostWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := reqToCtx(r)

	requestID := h.parser.ParseRequestID(ctx, r)

	w.Header().Set(requestIDHeader, requestID)

	bs, err := h.parser.ParseWebhookBody(ctx, r)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse webhook body", "request_id", requestID, "error", err)
		wrtTxt(w, http.StatusBadRequest, "Invalid request")
		return
	}

	destination, err := h.parser.ParseDestination(ctx, r, h.destination)
	if err != nil && errors.Is(err, ErrMissingDestination) {
		slog.ErrorContext(ctx, "mattermost webhook url not provided in query parameter or environment", "request_id", requestID)
		wrtTxt(w, http.StatusBadRequest, "Missing webhook_url parameter or MATTERMOST_WEBHOOK_URL configuration")
		return
	} else if err != nil {
		slog.ErrorContext(ctx, "invalid webhook url", "request_id", requestID, "error", err)
		wrtTxt(w, http.StatusBadRequest, "Invalid webhook_url parameter")
		return
	}

	if err := h.relayer.Relay(ctx, bs, destination, requestID); err != nil {
		wrtTxt(w, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	wrtTxt(w, http.StatusOK, "OK")
}

// NotFound answers every unmatched request. The method is checked before
// the path, so a non-POST request is a 405 wherever it was sent.
func (h *Webhook) NotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		wrtTxt(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	wrtTxt(w, http.StatusNotFound, "Not found")
}

func NewWebhookHandler(relayerService *relayer.Service, destination string) *Webhook {
	return &Webhook{
		parser:      &Parser{},
		relayer:     relayerService,
		destination: destination,
	}
}
