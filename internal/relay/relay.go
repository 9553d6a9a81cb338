package relay

import (
	"net/http"

	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
	"github.com/w-h-a/deploy-relay/internal/relay/config"
	httphandlers "github.com/w-h-a/deploy-relay/internal/relay/handlers/http"
	"github.com/w-h-a/deploy-relay/internal/relay/services/formatter"
	"github.com/w-h-a/deploy-relay/internal/relay/services/relayer"
	"github.com/w-h-a/pkg/serverv2"
	httpserver "github.com/w-h-a/pkg/serverv2/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

func NewRelay(
	notifierClient notifier.Notifier,
) (serverv2.Server, *relayer.Service) {
	// services
	formatterService := formatter.New(
		config.Username(),
		config.IconURL(),
	)

	relayerService := relayer.New(
		formatterService,
		notifierClient,
	)

	// base server options
	opts := []serverv2.ServerOption{
		serverv2.ServerWithNamespace(config.Env()),
		serverv2.ServerWithName(config.Name()),
		serverv2.ServerWithVersion(config.Version()),
	}

	// create http router
	router := httphandlers.NewRouter(relayerService, config.Destination())

	// create http server
	httpOpts := []serverv2.ServerOption{
		serverv2.ServerWithAddress(config.HttpAddress()),
	}

	httpOpts = append(httpOpts, opts...)

	httpServer := httpserver.NewServer(httpOpts...)

	handler := otelhttp.NewHandler(
		router,
		"",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string { return r.URL.Path }),
		otelhttp.WithTracerProvider(otel.GetTracerProvider()),
		otelhttp.WithPropagators(otel.GetTextMapPropagator()),
		otelhttp.WithFilter(func(r *http.Request) bool { return r.URL.Path != httphandlers.StatusPath }),
	)

	httpServer.Handle(handler)

	return httpServer, relayerService
}
