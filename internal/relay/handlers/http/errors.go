package http

import "errors"

var (
	ErrBodyTooLarge       = errors.New("request body too large")
	ErrMissingDestination = errors.New("missing webhook_url parameter or MATTERMOST_WEBHOOK_URL configuration")
	ErrInvalidDestination = errors.New("webhook_url must be an absolute http or https url")
)
