package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/w-h-a/deploy-relay/cmd"
)

func main() {
	app := &cli.App{
		Name:  "deploy-relay",
		Usage: "Relay Vercel deployment webhooks to a Mattermost channel",
		Commands: []*cli.Command{
			{
				Name:   "relay",
				Usage:  "Start the webhook relay",
				Action: cmd.StartRelay,
			},
			{
				Name:  "sample",
				Usage: "Post sample deployment events to a running relay",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "address",
						Usage: "Base address of the relay",
						Value: "http://localhost:4000",
					},
					&cli.StringFlag{
						Name:    "webhook_url",
						Aliases: []string{"webhook-url"},
						Usage:   "Mattermost incoming webhook to forward to, overriding the relay's default",
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Event type to send (deployment, deployment-ready, deployment-error or all)",
						Value: "all",
					},
					&cli.DurationFlag{
						Name:  "pause",
						Usage: "Pause between samples",
						Value: time.Second,
					},
				},
				Action: cmd.SendSamples,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
