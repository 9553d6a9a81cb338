package http

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr"
	"github.com/w-h-a/deploy-relay/internal/event"
)

const (
	destinationParam = "webhook_url"
	requestIDHeader  = "X-Request-Id"
	maxBodySize      = 1 << 20
)

type Parser struct{}

func (p *Parser) ParseWebhookBody(ctx context.Context, r *http.Request) ([]byte, error) {
	bs, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read body").With("method", r.Method).With("path", r.URL.Path)
	}

	defer r.Body.Close()

	if len(bs) > maxBodySize {
		return nil, goerr.Wrap(ErrBodyTooLarge).With("limit", maxBodySize)
	}

	if err := event.Validate(bs); err != nil {
		return nil, goerr.Wrap(err).With("method", r.Method).With("path", r.URL.Path).With("size", len(bs))
	}

	return bs, nil
}

// ParseDestination prefers the webhook_url query parameter over fallback.
func (p *Parser) ParseDestination(ctx context.Context, r *http.Request, fallback string) (string, error) {
	destination := r.URL.Query().Get(destinationParam)
	if len(destination) == 0 {
		destination = fallback
	}

	if len(destination) == 0 {
		return "", ErrMissingDestination
	}

	u, err := url.Parse(destination)
	if err != nil {
		return "", goerr.Wrap(ErrInvalidDestination, err.Error())
	}

	if (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
		return "", goerr.Wrap(ErrInvalidDestination).With("scheme", u.Scheme)
	}

	return destination, nil
}

func (p *Parser) ParseRequestID(ctx context.Context, r *http.Request) string {
	if id := r.Header.Get(requestIDHeader); len(id) > 0 {
		return id
	}

	return uuid.NewString()
}
