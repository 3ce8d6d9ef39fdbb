package seed

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"sales-task-tracker/internal/task"
	"sales-task-tracker/pkg/log"
)

// Config describes where the seed payload lives. File wins over URL.
type Config struct {
	URL     string
	File    string
	Timeout time.Duration
	OAuth2  OAuth2Config
}

// OAuth2Config enables the client-credentials flow for URL sources.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

func (c OAuth2Config) enabled() bool {
	return c.ClientID != "" && c.TokenURL != ""
}

// New picks the Source matching cfg. It returns nil when nothing is configured.
func New(ctx context.Context, l log.Logger, cfg Config) task.Source {
	switch {
	case cfg.File != "":
		return NewFileSource(cfg.File, l)
	case cfg.URL != "":
		return NewHTTPSource(cfg.URL, newHTTPClient(ctx, cfg), l)
	}
	return nil
}

func newHTTPClient(ctx context.Context, cfg Config) *http.Client {
	var client *http.Client
	if cfg.OAuth2.enabled() {
		cc := clientcredentials.Config{
			ClientID:     cfg.OAuth2.ClientID,
			ClientSecret: cfg.OAuth2.ClientSecret,
			TokenURL:     cfg.OAuth2.TokenURL,
			Scopes:       cfg.OAuth2.Scopes,
		}
		client = cc.Client(ctx)
	} else {
		client = &http.Client{}
	}
	client.Timeout = cfg.Timeout
	return client
}
