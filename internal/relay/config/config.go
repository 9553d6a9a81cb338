package config

import (
	"os"
	"sync"
	"time"

	"github.com/w-h-a/deploy-relay/internal/relay/clients/notifier"
)

const (
	defaultIconURL = "https://assets.vercel.com/image/upload/v1588805858/repositories/vercel/logo.png"
)

var (
	instance *config
	once     sync.Once
)

type config struct {
	env            string
	name           string
	version        string
	httpAddress    string
	tracesAddress  string
	metricsAddress string
	notifier       string
	destination    string
	forwardTimeout time.Duration
	username       string
	iconURL        string
}

func New() {
	once.Do(func() {
		instance = &config{
			env:            "dev",
			name:           "deploy-relay",
			version:        "0.1.0-alpha.0",
			httpAddress:    ":4000",
			tracesAddress:  "",
			metricsAddress: "",
			notifier:       "mattermost",
			destination:    "",
			forwardTimeout: 10 * time.Second,
			username:       "Vercel",
			iconURL:        defaultIconURL,
		}

		env := os.Getenv("ENV")
		if len(env) > 0 {
			instance.env = env
		}

		name := os.Getenv("NAME")
		if len(name) > 0 {
			instance.name = name
		}

		version := os.Getenv("VERSION")
		if len(version) > 0 {
			instance.version = version
		}

		httpAddress := os.Getenv("HTTP_ADDRESS")
		if len(httpAddress) > 0 {
			instance.httpAddress = httpAddress
		}

		tracesAddress := os.Getenv("TRACES_ADDRESS")
		if len(tracesAddress) > 0 {
			instance.tracesAddress = tracesAddress
		}

		metricsAddress := os.Getenv("METRICS_ADDRESS")
		if len(metricsAddress) > 0 {
			instance.metricsAddress = metricsAddress
		}

		n := os.Getenv("NOTIFIER")
		if len(n) > 0 {
			if _, ok := notifier.NotifierTypes[n]; ok {
				instance.notifier = n
			} else {
				panic("unsupported notifier")
			}
		}

		destination := os.Getenv("MATTERMOST_WEBHOOK_URL")
		if len(destination) > 0 {
			instance.destination = destination
		}

		forwardTimeout := os.Getenv("FORWARD_TIMEOUT")
		if len(forwardTimeout) > 0 {
			dur, err := time.ParseDuration(forwardTimeout)
			if err != nil {
				panic("invalid forward timeout")
			}
			if dur <= 0 {
				panic("forward timeout must be a positive duration")
			}
			instance.forwardTimeout = dur
		}

		username := os.Getenv("RELAY_USERNAME")
		if len(username) > 0 {
			instance.username = username
		}

		iconURL := os.Getenv("RELAY_ICON_URL")
		if len(iconURL) > 0 {
			instance.iconURL = iconURL
		}
	})
}

func Env() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.env
}

func Name() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.name
}

func Version() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.version
}

func HttpAddress() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.httpAddress
}

func TracesAddress() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.tracesAddress
}

func MetricsAddress() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.metricsAddress
}

func Notifier() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.notifier
}

// Destination is the default chat webhook used when a request does not
// carry its own.
func Destination() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.destination
}

func ForwardTimeout() time.Duration {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.forwardTimeout
}

func Username() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.username
}

func IconURL() string {
	if instance == nil {
		panic("cfg is nil")
	}

	return instance.iconURL
}
