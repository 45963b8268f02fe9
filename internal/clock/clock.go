// Package clock converts between the H:M:S.ms stopwatch notation and
// plain seconds.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat indicates a malformed stopwatch reading. Wrapped errors
// carry the specific reason.
var ErrFormat = errors.New("invalid time format")

// Parse converts a stopwatch reading in "hh:mm:ss.ms" form into total
// seconds. Component values are not clamped to conventional ranges:
// "00:99:99.999" is accepted and combined arithmetically.
func Parse(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: time format must be hh:mm:ss.ms", ErrFormat)
	}

	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("%w: seconds and milliseconds must be separated by a single point", ErrFormat)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: time components must be integers", ErrFormat)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: time components must be integers", ErrFormat)
	}
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: time components must be integers", ErrFormat)
	}
	millis, err := strconv.Atoi(secParts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: time components must be integers", ErrFormat)
	}

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000.0, nil
}

// FormatHMS renders whole seconds as "hh:mm:ss". The hour field grows
// beyond two digits when needed.
func FormatHMS(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
