package logging

import "os"

// Env maps environment variable names for logging configuration.
type Env struct {
	Level  string
	Format string
}

// Config holds the level and output format.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize applies defaults, then environment overrides, then validates.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := os.Getenv(env.Level); env.Level != "" && v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); env.Format != "" && v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}
