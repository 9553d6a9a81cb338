package formatter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

// generic covers every type without a dedicated formatter by dumping the
// raw payload.
type generic struct {
	eventType event.Type
}

func (f *generic) Format(raw json.RawMessage) slack.Attachment {
	return slack.Attachment{
		Fallback: fmt.Sprintf("Vercel %s", f.name()),
		Color:    colorDefault,
		Title:    fmt.Sprintf("📢 %s", f.name()),
		Text:     "```json\n" + truncate(pretty(raw), maxDumpLength) + "\n```",
		Fields:   []slack.AttachmentField{},
	}
}

func (f *generic) Fallback() slack.Attachment {
	return slack.Attachment{
		Fallback: fmt.Sprintf("Vercel %s", f.name()),
		Color:    colorDefault,
		Title:    fmt.Sprintf("📢 %s", f.name()),
		Text:     fmt.Sprintf("A %s event occurred. Check Vercel dashboard for details.", f.name()),
	}
}

func (f *generic) name() string {
	if len(f.eventType) == 0 {
		return "unknown"
	}
	return string(f.eventType)
}

func formatGeneric(ctx context.Context, e *event.Envelope) (att slack.Attachment) {
	f := &generic{eventType: e.Type}

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "failed to format event", "type", e.Type, "error", fmt.Sprint(r))
			att = f.Fallback()
		}
	}()

	return f.Format(e.Payload)
}

func pretty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}

	return buf.String()
}
