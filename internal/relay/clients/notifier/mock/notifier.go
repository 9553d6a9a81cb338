package mock

import (
	"context"

	"github.com/slack-go/slack"
	testmock "github.com/stretchr/testify/mock"
	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
)

type mockNotifier struct {
	testmock.Mock
}

func (n *mockNotifier) Notify(ctx context.Context, msg *slack.WebhookMessage, opts ...notifier.NotifyOption) error {
	args := n.Called(ctx, msg, opts)
	return args.Error(0)
}

func NewNotifier(opts ...notifier.Option) *mockNotifier {
	return &mockNotifier{}
}
