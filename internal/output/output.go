// Package output renders evaluation results in text or JSON form.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bimmerbailey/timegate/internal/match"
)

// Format represents an output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
}

// New creates a new output Writer.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteResult outputs one evaluation result in the configured format.
// Rejection is a normal outcome, not an error.
func (wr *Writer) WriteResult(r match.Result) error {
	if wr.format == FormatJSON {
		enc := json.NewEncoder(wr.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if !r.Matched {
		_, err := fmt.Fprintln(wr.w, "Timer rejected: deviation exceeds tolerance.")
		return err
	}

	_, err := fmt.Fprintf(wr.w, "Closest legal time: %s/%s\n", FormatSeconds(r.Legal), r.Display)
	return err
}

// FormatSeconds renders a legal-time value without a trailing ".0" for
// whole seconds: 5 -> "5", 5.5 -> "5.5".
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
