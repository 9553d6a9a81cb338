package local

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
)

type localNotifier struct {
	options notifier.Options
}

func (n *localNotifier) Notify(ctx context.Context, msg *slack.WebhookMessage, opts ...notifier.NotifyOption) error {
	options := notifier.NewNotifyOptions(opts...)

	if len(options.URL) == 0 {
		return notifier.ErrMissingURL
	}

	title := ""
	if len(msg.Attachments) > 0 {
		title = msg.Attachments[0].Title
	}

	slog.InfoContext(
		ctx,
		"NOTIFY MESSAGE",
		"request_id", options.RequestID,
		"username", msg.Username,
		"title", title,
		"attachments", msg.Attachments,
	)

	return nil
}

func NewNotifier(opts ...notifier.Option) notifier.Notifier {
	options := notifier.NewOptions(opts...)

	n := &localNotifier{
		options: options,
	}

	return n
}
