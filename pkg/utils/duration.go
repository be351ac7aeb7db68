// Package utils provides small helpers shared across the bot.
package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned for cooldown strings that do not match the
// <integer><unit> form.
var ErrInvalidDuration = errors.New("invalid duration format")

// cooldownPattern matches an integer followed by a unit: s(econds),
// m(inutes), h(ours) or j(ours/days).
var cooldownPattern = regexp.MustCompile(`^(\d+)([smhj])$`)

// ParseCooldown parses a cooldown string like "5m", "300s", "1h" or "2j"
// into a duration. The "j" unit means days.
func ParseCooldown(input string) (time.Duration, error) {
	match := cooldownPattern.FindStringSubmatch(input)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}

	switch match[2] {
	case "s":
		return time.Duration(value) * time.Second, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "j":
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}
}

// FormatDuration renders a duration using the two most significant units,
// e.g. "2j 3h", "1h 5m", "4m 30s" or "45s". Durations under a second
// render as "0s".
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dj %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
