package formatter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

const (
	colorStarted  = "#f5a623"
	colorReady    = "#0f9549"
	colorFailed   = "#e00"
	colorCanceled = "#666"
	colorDefault  = "#0070f3"
)

// Formatter renders one deployment variant. Fallback is what gets sent
// when Format cannot finish for that variant.
type Formatter interface {
	Format(p *event.Payload) slack.Attachment
	Fallback() slack.Attachment
}

var formatters = map[event.Type]Formatter{
	event.Deployment:         &started{},
	event.DeploymentReady:    &ready{},
	event.DeploymentError:    &failed{},
	event.DeploymentCanceled: &canceled{},
}

// Lookup returns the formatter for t, or false for types without one.
func Lookup(t event.Type) (Formatter, bool) {
	f, ok := formatters[t]
	return f, ok
}

func formatVariant(ctx context.Context, t event.Type, f Formatter, e *event.Envelope) (att slack.Attachment) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "failed to format event", "type", t, "error", fmt.Sprint(r))
			att = f.Fallback()
		}
	}()

	p, err := event.PayloadFactory(e.Payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to format event", "type", t, "error", err)
		return f.Fallback()
	}

	return f.Format(p)
}
