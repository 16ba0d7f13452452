// Package config handles the application configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Version is set at build time.
var Version = "dev"

var (
	configDir      = "checkin"
	configFileName = "config.yml"
	dbFileName     = "checkin.db"
	logFileName    = "checkin.log"
)

// SessionConfig configures the check-in session controller.
type SessionConfig struct {
	// AutoCheckout ends a running session automatically after this
	// duration. Zero disables the timer.
	AutoCheckout time.Duration
	// Cmd is an arbitrary command executed after each checkout.
	Cmd string
	// Notify controls the desktop notification on checkout.
	Notify bool
	// MakeupStart and MakeupEnd are the default clock values offered by
	// the make-up dialog.
	MakeupStart string
	MakeupEnd   string
}

// ListConfig configures the record browser.
type ListConfig struct {
	// BufferRows is the number of extra rows materialized on each side
	// of the visible window.
	BufferRows int
}

// Config is the fully resolved application configuration.
type Config struct {
	Session        SessionConfig
	List           ListConfig
	TwentyFourHour bool

	DBFilePath     string
	LogFilePath    string
	ConfigFilePath string
}

// Option is a function that modifies a Config.
type Option func(*Config) error

// New creates a Config with defaults, applying the given options in
// order.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		Session: SessionConfig{
			AutoCheckout: time.Hour,
			Notify:       true,
			MakeupStart:  "09:00",
			MakeupEnd:    "18:00",
		},
		List: ListConfig{
			BufferRows: 5,
		},
	}

	if err := c.initPaths(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// initPaths resolves the config, database, and log file locations. The
// CHECKIN_ENV environment variable switches to suffixed files so that
// development data stays out of the real record set.
func (c *Config) initPaths() error {
	env := strings.TrimSpace(os.Getenv("CHECKIN_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("checkin_%s.db", env)
		logFileName = fmt.Sprintf("checkin_%s.log", env)
	}

	var err error

	c.ConfigFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return err
	}

	c.DBFilePath = filepath.Join(dataDir, dbFileName)

	stateDir, err := xdg.StateFile(configDir)
	if err != nil {
		return err
	}

	c.LogFilePath = filepath.Join(stateDir, logFileName)

	return nil
}
