// Package config provides configuration types and validation for
// timegate.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// ErrConfig indicates a missing or malformed configuration field, as
// opposed to bad user input. Wrapped errors name the offending field.
var ErrConfig = errors.New("invalid configuration")

// Config holds the evaluation parameters loaded from the config file.
type Config struct {
	LegalTimes []float64 `mapstructure:"legal_times"`
	Tolerance  float64   `mapstructure:"tolerance"`
}

// Parse validates a raw configuration document and converts it into a
// Config. legal_times must be a list of numbers and tolerance a single
// number; anything else is rejected before it can reach the matcher.
func Parse(raw map[string]any) (Config, error) {
	list, ok := raw["legal_times"].([]any)
	if !ok {
		return Config{}, fmt.Errorf("%w: legal_times must be a list of numbers", ErrConfig)
	}

	legal := make([]float64, 0, len(list))
	for _, v := range list {
		n, ok := toNumber(v)
		if !ok {
			return Config{}, fmt.Errorf("%w: legal_times must be a list of numbers", ErrConfig)
		}
		legal = append(legal, n)
	}

	tolerance, ok := toNumber(raw["tolerance"])
	if !ok {
		return Config{}, fmt.Errorf("%w: tolerance must be a number", ErrConfig)
	}

	return Config{LegalTimes: legal, Tolerance: tolerance}, nil
}

// toNumber accepts only numeric types. Strings and booleans are not
// coerced, even though the underlying cast package would allow it.
func toNumber(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToFloat64(v), true
	}
	return 0, false
}
