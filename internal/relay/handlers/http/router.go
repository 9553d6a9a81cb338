package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/w-h-a/deploy-relay/internal/relay/services/relayer"
)

const (
	WebhookPath = "/webhook"
	StatusPath  = "/status"
)

func NewRouter(relayerService *relayer.Service, destination string) *mux.Router {
	router := mux.NewRouter()

	httpStatus := NewStatusHandler()
	router.Methods(http.MethodGet).Path(StatusPath).HandlerFunc(httpStatus.GetStatus)

	httpWebhook := NewWebhookHandler(relayerService, destination)
	router.Methods(http.MethodPost).Path(WebhookPath).HandlerFunc(httpWebhook.PostWebhook)

	router.NotFoundHandler = http.HandlerFunc(httpWebhook.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(httpWebhook.NotFound)

	return router
}
