package clock

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"zero", "00:00:00.000", 0},
		{"five seconds", "00:00:05.000", 5},
		{"ninety seconds", "00:01:30.000", 90},
		{"with milliseconds", "00:00:05.500", 5.5},
		{"hour rollover", "01:01:01.001", 3661.001},
		{"single digit groups", "0:0:5.0", 5},
		{"unclamped minutes and seconds", "00:99:99.999", 6039.999},
		{"wide hours", "100:00:00.000", 360000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"missing millisecond part", "00:00:10", "separated by a single point"},
		{"two colon groups", "00:10.000", "time format must be hh:mm:ss.ms"},
		{"four colon groups", "1:2:3:4.000", "time format must be hh:mm:ss.ms"},
		{"two points", "00:00:10.5.5", "separated by a single point"},
		{"empty string", "", "time format must be hh:mm:ss.ms"},
		{"letters in hours", "aa:00:10.000", "time components must be integers"},
		{"letters in milliseconds", "00:00:10.xyz", "time components must be integers"},
		{"empty component", "00::10.000", "time components must be integers"},
		{"whitespace in component", "00: 1:10.000", "time components must be integers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrFormat", tt.input, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse(%q) error = %q, want substring %q", tt.input, err, tt.wantMsg)
			}
		})
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "00:00:00"},
		{"five seconds", 5, "00:00:05"},
		{"under a minute", 59, "00:00:59"},
		{"ninety seconds", 90, "00:01:30"},
		{"exact hour", 3600, "01:00:00"},
		{"hour minute second", 3661, "01:01:01"},
		{"hours beyond two digits", 360000, "100:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatHMS(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatHMS(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
