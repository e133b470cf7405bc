package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

// Environment variables read at startup.
const (
	EnvLogLevel    = "TOASTLAB_LOG_LEVEL"
	EnvTheme       = "TOASTLAB_THEME"
	EnvThemePolicy = "TOASTLAB_THEME_POLICY"
	EnvDebounce    = "TOASTLAB_DEBOUNCE"
)

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Env holds the environment overrides. Zero values mean unset.
type Env struct {
	LogLevel    string
	Theme       string
	ThemePolicy string
	Debounce    time.Duration
}

// LoadEnv reads the overrides from lookup, falling back to the values of
// envFile when it is set. Variables already present in the process
// environment win over the file.
func LoadEnv(envFile string, lookup LookupFunc) (Env, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var fileValues map[string]string
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return Env{}, tlerrors.NewParseError(envFile, 0, err)
		}
		fileValues = values
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileValues[key])
	}

	env := Env{
		LogLevel:    get(EnvLogLevel),
		Theme:       get(EnvTheme),
		ThemePolicy: get(EnvThemePolicy),
	}
	if raw := get(EnvDebounce); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Env{}, tlerrors.NewValidationError(EnvDebounce, "expected a positive duration such as 200ms, got "+raw, err)
		}
		env.Debounce = d
	}
	return env, nil
}
