// Package config loads the SharePoint connection settings from the
// environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultListTitle is the display name of the list this tool exports.
const DefaultListTitle = "RA4-1 Solicitud para Viajes"

const (
	defaultSiteURL  = "https://sgi.cedia.org.ec"
	defaultUsername = "superuser"

	// DefaultTimeout applies to every request issued during a run.
	DefaultTimeout = 30 * time.Second
)

// Config holds the SharePoint connection parameters. It is built once at
// process start and never mutated afterwards.
type Config struct {
	// SiteURL is the base address of the SharePoint site.
	SiteURL string

	// Username and Password form the NTLM credential pair.
	Username string
	Password string

	// ListTitle is the display name of the target list.
	ListTitle string

	// Timeout applies per request.
	Timeout time.Duration
}

// FromEnv builds a Config from environment variables, falling back to the
// documented defaults. SP_PASSWORD has no default and must be supplied.
func FromEnv() Config {
	cfg := Config{
		SiteURL:   getEnv("SP_SITE_URL", defaultSiteURL),
		Username:  getEnv("SP_USERNAME", defaultUsername),
		Password:  os.Getenv("SP_PASSWORD"),
		ListTitle: getEnv("SP_LIST_TITLE", DefaultListTitle),
		Timeout:   DefaultTimeout,
	}

	if secs := os.Getenv("SP_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
