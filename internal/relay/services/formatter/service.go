package formatter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/event"
)

const (
	brand      = "Vercel"
	isoLayout  = "2006-01-02T15:04:05.000Z"
	genericMsg = "A deployment event occurred. Check Vercel dashboard for details."
)

type Service struct {
	username string
	iconURL  string
	now      func() time.Time
}

// Format never fails. Whatever goes wrong below it ends up as a less
// detailed message instead.
func (s *Service) Format(ctx context.Context, bs []byte) (msg *slack.WebhookMessage) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "failed to format notification", "error", fmt.Sprint(r))
			msg = s.notification()
		}
	}()

	e, err := event.Factory(bs)
	if err != nil {
		slog.ErrorContext(ctx, "failed to format notification", "error", err)
		return s.notification()
	}

	var att slack.Attachment

	if f, ok := Lookup(e.Type); ok {
		att = formatVariant(ctx, e.Type, f, e)
	} else {
		att = formatGeneric(ctx, e)
	}

	ts := e.CreatedAt.Time
	if ts.IsZero() {
		ts = s.now()
	}

	att.Footer = footer(ts)
	att.FooterIcon = s.iconURL

	return &slack.WebhookMessage{
		Username:    s.username,
		IconURL:     s.iconURL,
		Attachments: []slack.Attachment{att},
	}
}

// EventType reports the envelope type for labelling, or "" when the body
// is not an envelope.
func (s *Service) EventType(bs []byte) string {
	e, err := event.Factory(bs)
	if err != nil {
		return ""
	}
	return string(e.Type)
}

func (s *Service) notification() *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Username: s.username,
		IconURL:  s.iconURL,
		Attachments: []slack.Attachment{
			{
				Fallback:   "Vercel Notification",
				Color:      colorDefault,
				Title:      "Vercel Notification",
				Text:       genericMsg,
				Footer:     footer(s.now()),
				FooterIcon: s.iconURL,
			},
		},
	}
}

func footer(ts time.Time) string {
	return fmt.Sprintf("%s | %s", brand, ts.UTC().Format(isoLayout))
}

func New(username, iconURL string) *Service {
	return &Service{
		username: username,
		iconURL:  iconURL,
		now:      time.Now,
	}
}
