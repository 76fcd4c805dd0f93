package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency. All checks run —
// errors are collected, not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	switch cfg.UI.Theme {
	case "dark", "light", "none":
	default:
		errs = append(errs, fmt.Sprintf("ui.theme %q must be \"dark\", \"light\", or \"none\"", cfg.UI.Theme))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
