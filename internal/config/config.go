package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "EXECTIMER"

type Config struct {
	// Disabled suppresses timing report lines. Wrapped calls still run and are still measured.
	Disabled bool `mapstructure:"disabled"`
	Log      Log  `mapstructure:"log"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// LogLevel returns the parsed diagnostics level. Level is normalised by Get, so parsing cannot fail here.
func (c Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

var cfg *Config

// Get configuration bound to environment variables.
func Get() Config {
	if cfg != nil {
		return *cfg
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvs(v, Config{})

	v.SetDefault("log.level", logrus.InfoLevel.String())

	cfg = defaults()
	// Keys are decoded one at a time so a malformed value only resets its own key.
	for _, k := range []struct {
		key    string
		target interface{}
	}{
		{key: "disabled", target: &cfg.Disabled},
		{key: "log.level", target: &cfg.Log.Level},
	} {
		if err := v.UnmarshalKey(k.key, k.target); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: %s: %v; using the default\n", envName(k.key), err)
		}
	}

	lvl, err := normalizeLogLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %s: %v; using %q\n", envName("log.level"), err, lvl.String())
	}
	cfg.Log.Level = lvl.String()

	return *cfg
}

// Reset is used only for unit testing to reset configuration and rebind variables.
func Reset() {
	cfg = nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func defaults() *Config {
	return &Config{
		Log: Log{Level: logrus.InfoLevel.String()},
	}
}
