package notifier

import "errors"

var (
	ErrMissingURL = errors.New("destination url is required")
	ErrEncoding   = errors.New("failed to encode message")
	ErrDelivery   = errors.New("failed to deliver message")
	ErrRejected   = errors.New("destination rejected message")
)
