package config

import (
	"fmt"
	"time"
)

// zapcore levels: -1 debug, 0 info, 1 warn, 2 error.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("log level %d out of range [%d, %d]", c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}

	if c.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	if _, err := time.Parse(c.TimeFormat, time.Now().Format(c.TimeFormat)); err != nil {
		return fmt.Errorf("invalid log time format %q: %w", c.TimeFormat, err)
	}

	return nil
}
