package cmd

import (
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/w-h-a/deploy-relay/internal/sample"
)

func SendSamples(ctx *cli.Context) error {
	client := &http.Client{Timeout: 30 * time.Second}

	return sample.RunSampleClient(
		client,
		os.Stdout,
		ctx.String("address"),
		ctx.String("webhook_url"),
		ctx.String("type"),
		ctx.Duration("pause"),
	)
}
