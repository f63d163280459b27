package canto

import (
	"strings"
	"time"
)

// Config carries the upstream account settings. It is injected explicitly
// at construction; core logic never reads ambient settings, so tests run
// against fake configurations.
type Config struct {
	Domain   string
	AppToken string
	Timeout  time.Duration
}

const DefaultTimeout = 30 * time.Second

func (c Config) IsConfigured() bool {
	return c.Domain != "" && c.AppToken != ""
}

// BaseURL returns the account root, e.g. "https://acme.canto.com". A
// domain that already carries a scheme is used as-is, so tests can point
// the client at a plain-HTTP server.
func (c Config) BaseURL() string {
	if strings.Contains(c.Domain, "://") {
		return strings.TrimSuffix(c.Domain, "/")
	}
	return "https://" + c.Domain
}
