package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// PreviewResult contains a rendered menu for output
type PreviewResult struct {
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`
	Weekday     int       `json:"weekday"`
	Day         string    `json:"day"`
	Available   bool      `json:"available"`
	Message     string    `json:"message,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *PreviewResult, format OutputFormat) error {
	if result.Day == "" && result.Weekday >= 0 && result.Weekday < len(dayNames) {
		result.Day = dayNames[result.Weekday]
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *PreviewResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the message as it would be sent
func writeText(w io.Writer, result *PreviewResult) error {
	if !result.Available {
		_, err := fmt.Fprintf(w, "No menu for %s\n", result.Day)
		return err
	}
	_, err := fmt.Fprint(w, result.Message)
	return err
}
