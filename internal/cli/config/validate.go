package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned for configurations that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

var validOutputs = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	valid := false
	for _, o := range validOutputs {
		if c.OutputFormat == o {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: output must be one of %s, got %q",
			ErrInvalidConfig, strings.Join(validOutputs, "|"), c.OutputFormat)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", ErrInvalidConfig)
	}
	return validateChecks(c.Checks, "checks")
}

func validateChecks(checks []Check, path string) error {
	for i, c := range checks {
		p := fmt.Sprintf("%s[%d]", path, i)
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: %s has no name", ErrInvalidConfig, p)
		}
		if err := validateChecks(c.Children, p+".children"); err != nil {
			return err
		}
	}
	return nil
}
