package notifier

import (
	"context"

	"github.com/slack-go/slack"
)

type NotifierType string

const (
	Mattermost NotifierType = "mattermost"
	Local      NotifierType = "local"
)

var (
	NotifierTypes = map[string]NotifierType{
		"mattermost": Mattermost,
		"local":      Local,
	}
)

type Notifier interface {
	Notify(ctx context.Context, msg *slack.WebhookMessage, opts ...NotifyOption) error
}
