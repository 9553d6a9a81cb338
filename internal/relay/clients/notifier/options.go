package notifier

import (
	"context"
	"net/http"
	"time"
)

type Option func(o *Options)

type Options struct {
	Timeout   time.Duration
	Transport http.RoundTripper
	Context   context.Context
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		o.Transport = transport
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Timeout: 10 * time.Second,
		Context: context.Background(),
	}

	for _, fn := range opts {
		fn(&options)
	}

	return options
}

type NotifyOption func(o *NotifyOptions)

type NotifyOptions struct {
	URL       string
	RequestID string
	Context   context.Context
}

func NotifyWithURL(url string) NotifyOption {
	return func(o *NotifyOptions) {
		o.URL = url
	}
}

func NotifyWithRequestID(id string) NotifyOption {
	return func(o *NotifyOptions) {
		o.RequestID = id
	}
}

func NewNotifyOptions(opts ...NotifyOption) NotifyOptions {
	options := NotifyOptions{
		Context: context.Background(),
	}

	for _, fn := range opts {
		fn(&options)
	}

	return options
}
