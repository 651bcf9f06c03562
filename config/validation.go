package config

import "fmt"

// Validate rejects configurations that would only fail later at runtime.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Storage.Mode {
	case StorageModeDB, StorageModeLocal:
	default:
		return fmt.Errorf("unknown storage mode %q (expected %q or %q)",
			c.Storage.Mode, StorageModeDB, StorageModeLocal)
	}

	if c.Storage.Mode == StorageModeLocal && c.Storage.LocalDataDir == "" {
		return fmt.Errorf("local storage mode requires a data directory")
	}

	if c.Extraction.Timeout <= 0 {
		return fmt.Errorf("extraction timeout must be positive, got %s", c.Extraction.Timeout)
	}

	if c.Extraction.MinContentLength < 0 {
		return fmt.Errorf("extraction min content length must not be negative, got %d", c.Extraction.MinContentLength)
	}

	return nil
}
