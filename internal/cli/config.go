package cli

import (
	"fmt"
	"os"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ConfigFile string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigFile: os.Getenv("VILLAGE_CONFIG"),
		Output:     getEnvOrDefault("VILLAGE_OUTPUT", FormatText),
		Verbose:    false,
	}
}

// Validate checks the flag values
func (c *Config) Validate() error {
	if c.Output != FormatText && c.Output != FormatJSON {
		return fmt.Errorf("output format must be %q or %q, got %q", FormatText, FormatJSON, c.Output)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
