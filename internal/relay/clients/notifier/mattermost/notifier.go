package mattermost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr"
	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName      = "github.com/w-h-a/deploy-relay/internal/relay/clients/notifier/mattermost"
	maxResponseBody = 4096
)

type mattermostNotifier struct {
	options notifier.Options
	client  *http.Client
	tracer  trace.Tracer
}

func (n *mattermostNotifier) Notify(ctx context.Context, msg *slack.WebhookMessage, opts ...notifier.NotifyOption) error {
	options := notifier.NewNotifyOptions(opts...)

	if len(options.URL) == 0 {
		return notifier.ErrMissingURL
	}

	ctx, span := n.tracer.Start(ctx, "mattermost.Notify", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	host := hostOf(options.URL)

	span.SetAttributes(attribute.String("server.address", host))

	bs, err := json.Marshal(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, notifier.ErrEncoding.Error())
		return fmt.Errorf("%w: %w", notifier.ErrEncoding, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, options.URL, bytes.NewReader(bs))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, notifier.ErrDelivery.Error())
		return goerr.Wrap(fmt.Errorf("%w: %w", notifier.ErrDelivery, err)).With("host", host)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "deploy-relay")

	if len(options.RequestID) > 0 {
		req.Header.Set("X-Request-Id", options.RequestID)
	}

	rsp, err := n.client.Do(req)
	if err != nil {
		// span
		slog.ErrorContext(ctx, "failed to send to mattermost", "host", host, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, notifier.ErrDelivery.Error())
		return goerr.Wrap(fmt.Errorf("%w: %w", notifier.ErrDelivery, err)).With("host", host)
	}

	defer rsp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", rsp.StatusCode))

	body, _ := io.ReadAll(io.LimitReader(rsp.Body, maxResponseBody))

	if rsp.StatusCode < http.StatusOK || rsp.StatusCode >= http.StatusMultipleChoices {
		// span
		slog.ErrorContext(ctx, "failed to send to mattermost", "host", host, "status", rsp.StatusCode, "body", string(body))
		span.SetStatus(codes.Error, notifier.ErrRejected.Error())
		return goerr.Wrap(notifier.ErrRejected, "unexpected status").
			With("host", host).
			With("status", rsp.StatusCode).
			With("body", string(body))
	}

	return nil
}

// hostOf keeps webhook tokens in the path out of logs and spans.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}

func NewNotifier(opts ...notifier.Option) notifier.Notifier {
	options := notifier.NewOptions(opts...)

	n := &mattermostNotifier{
		options: options,
		client: &http.Client{
			Timeout:   options.Timeout,
			Transport: otelhttp.NewTransport(options.Transport),
		},
		tracer: otel.Tracer(tracerName),
	}

	return n
}
