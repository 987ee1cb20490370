package settings

import (
	"errors"
	"time"
)

var (
	ErrInvalidURL = errors.New("webhook url must be an absolute http or https url")
	// ErrNotFound is returned by a Repository that has no stored row yet.
	ErrNotFound = errors.New("settings not stored")
)

// Config is the singleton system configuration.
type Config struct {
	WebhookURL   string
	LastSyncDate string
	AutoSync     bool
	UpdatedAt    time.Time
}

// Defaults is what Get returns before anything has been saved.
func Defaults() Config {
	return Config{WebhookURL: "", LastSyncDate: "-", AutoSync: false}
}
