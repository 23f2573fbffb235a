package helpers

import (
	"time"

	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// ParseDuration parses a configured duration, falling back to def when the
// value is empty, malformed or not positive.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
