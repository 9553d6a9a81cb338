package relayer

import (
	"context"
	"log/slog"

	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
	"github.com/w-h-a/deploy-relay/internal/relay/services/formatter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	meterName = "github.com/w-h-a/deploy-relay/internal/relay/services/relayer"

	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
)

type Service struct {
	formatter *formatter.Service
	notifier  notifier.Notifier
	delivered metric.Int64Counter
}

// Relay formats the envelope in bs and forwards it once to destination.
// Only delivery errors are returned.
func (s *Service) Relay(ctx context.Context, bs []byte, destination string, requestID string) error {
	eventType := s.formatter.EventType(bs)

	msg := s.formatter.Format(ctx, bs)

	err := s.notifier.Notify(
		ctx,
		msg,
		notifier.NotifyWithURL(destination),
		notifier.NotifyWithRequestID(requestID),
	)

	outcome := outcomeDelivered
	if err != nil {
		outcome = outcomeFailed
	}

	s.delivered.Add(
		ctx,
		1,
		metric.WithAttributes(
			attribute.String("event.type", eventType),
			attribute.String("outcome", outcome),
		),
	)

	if err != nil {
		// span
		slog.ErrorContext(ctx, "failed to relay event", "request_id", requestID, "type", eventType, "error", err)
		return err
	}

	slog.InfoContext(ctx, "relayed event", "request_id", requestID, "type", eventType)

	return nil
}

func New(formatterService *formatter.Service, notifierClient notifier.Notifier) *Service {
	counter, err := otel.Meter(meterName).Int64Counter(
		"relay.notifications",
		metric.WithDescription("Notifications forwarded to the chat destination"),
	)
	if err != nil {
		slog.Warn("failed to create notifications counter", "error", err)
		counter, _ = noop.NewMeterProvider().Meter(meterName).Int64Counter("relay.notifications")
	}

	return &Service{
		formatter: formatterService,
		notifier:  notifierClient,
		delivered: counter,
	}
}
