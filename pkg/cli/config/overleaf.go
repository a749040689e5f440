package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/olsync/olpull/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Overleaf holds connection settings for the remote platform
type Overleaf struct {
	BaseURL   string
	Cookie    string
	Timeout   time.Duration
	UserAgent string
}

// Flags returns CLI flags for Overleaf configuration
func (c *Overleaf) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Overleaf base URL (e.g. https://www.overleaf.com)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("OLPULL_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "cookie",
			Usage:       "Session cookie value (e.g. s%3A...) or full overleaf.sid=... pair",
			Destination: &c.Cookie,
			Sources:     cli.EnvVars("OLPULL_COOKIE"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Overall bound for each HTTP request",
			Value:       60 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("OLPULL_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "user-agent",
			Usage:       "User-Agent header sent to the platform",
			Destination: &c.UserAgent,
			Sources:     cli.EnvVars("OLPULL_USER_AGENT"),
		},
	}
}

// Validate checks the settings that must be present before any network access
func (c *Overleaf) Validate() error {
	if c.BaseURL == "" {
		return goerr.New("base URL must not be empty", goerr.T(model.ErrTagConfig))
	}
	if c.Cookie == "" {
		return goerr.New("session cookie must not be empty", goerr.T(model.ErrTagConfig))
	}
	return nil
}
