package cmd

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/w-h-a/deploy-relay/internal/relay"
	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier/local"
	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier/mattermost"
	"github.com/w-h-a/deploy-relay/internal/relay/config"
	"github.com/w-h-a/deploy-relay/internal/telemetry"
)

func StartRelay(ctx *cli.Context) error {
	// cfg
	config.New()

	// telemetry
	shutdown, err := telemetry.Setup(ctx.Context, telemetry.Options{
		Name:           config.Name(),
		Version:        config.Version(),
		Env:            config.Env(),
		TracesAddress:  config.TracesAddress(),
		MetricsAddress: config.MetricsAddress(),
	})
	if err != nil {
		slog.ErrorContext(ctx.Context, "failed to set up telemetry", "error", err)
		return err
	}

	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(c); err != nil {
			slog.ErrorContext(c, "failed to flush telemetry", "error", err)
		}
	}()

	// clients
	notifierClient := newNotifier()

	// server
	httpServer, _ := relay.NewRelay(notifierClient)

	// wait group and error chan
	wg := &sync.WaitGroup{}
	ch := make(chan error, 1)

	// start http server
	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.InfoContext(ctx.Context, "starting http server", "address", config.HttpAddress(), "notifier", config.Notifier())
		ch <- httpServer.Start()
	}()

	// block
	err = <-ch
	if err != nil {
		slog.ErrorContext(ctx.Context, "failed to start", "error", err)
		return err
	}

	// graceful shutdown
	slog.InfoContext(ctx.Context, "stopping...")

	wait := make(chan struct{})

	go func() {
		defer close(wait)
		wg.Wait()
	}()

	select {
	case <-wait:
	case <-time.After(30 * time.Second):
	}

	slog.InfoContext(ctx.Context, "successfully stopped")

	return nil
}

func newNotifier() notifier.Notifier {
	opts := []notifier.Option{
		notifier.WithTimeout(config.ForwardTimeout()),
	}

	switch notifier.NotifierType(config.Notifier()) {
	case notifier.Local:
		return local.NewNotifier(opts...)
	default:
		return mattermost.NewNotifier(opts...)
	}
}
