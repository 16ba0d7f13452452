package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyAutoCheckout    = "session.auto_checkout"
	keySessionCmd      = "session.cmd"
	keyNotify          = "notifications.enabled"
	keyMakeupStartTime = "makeup.start_time"
	keyMakeupEndTime   = "makeup.end_time"
	keyBufferRows      = "list.buffer_rows"
	keyTwentyFourHour  = "display.24hr_clock"
)

// WithConfigPath returns an Option that overrides the resolved config
// file location. Useful for tests.
func WithConfigPath(path string) Option {
	return func(c *Config) error {
		c.ConfigFilePath = path
		return nil
	}
}

// WithViperConfig returns an Option that loads configuration from the
// YAML file at the Config's resolved path, writing the defaults back on
// first run.
func WithViperConfig() Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(c.ConfigFilePath)
		v.SetConfigType("yaml")

		setViperDefaults(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper, c *Config) {
	v.SetDefault(keyAutoCheckout, c.Session.AutoCheckout.String())
	v.SetDefault(keySessionCmd, c.Session.Cmd)
	v.SetDefault(keyNotify, c.Session.Notify)
	v.SetDefault(keyMakeupStartTime, c.Session.MakeupStart)
	v.SetDefault(keyMakeupEndTime, c.Session.MakeupEnd)
	v.SetDefault(keyBufferRows, c.List.BufferRows)
	v.SetDefault(keyTwentyFourHour, c.TwentyFourHour)
}

// loadViperConfig reads the resolved values into the Config, validating
// as it goes.
func loadViperConfig(v *viper.Viper, c *Config) error {
	auto := v.GetString(keyAutoCheckout)

	d, err := time.ParseDuration(auto)
	if err != nil || d < 0 {
		return errConfigOption.Fmt(keyAutoCheckout, auto)
	}

	c.Session.AutoCheckout = d
	c.Session.Cmd = v.GetString(keySessionCmd)
	c.Session.Notify = v.GetBool(keyNotify)

	start := v.GetString(keyMakeupStartTime)
	if !validClock(start) {
		return errConfigOption.Fmt(keyMakeupStartTime, start)
	}

	end := v.GetString(keyMakeupEndTime)
	if !validClock(end) {
		return errConfigOption.Fmt(keyMakeupEndTime, end)
	}

	c.Session.MakeupStart = start
	c.Session.MakeupEnd = end

	rows := v.GetInt(keyBufferRows)
	if rows < 0 {
		return errConfigOption.Fmt(keyBufferRows, rows)
	}

	c.List.BufferRows = rows
	c.TwentyFourHour = v.GetBool(keyTwentyFourHour)

	return nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
