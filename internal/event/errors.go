package event

import "errors"

var (
	ErrEmptyBody       = errors.New("empty body")
	ErrMalformedBody   = errors.New("body is not valid json")
	ErrMalformedFormat = errors.New("envelope does not match the expected shape")
)
