package reporter

import (
	"encoding/json"
	"io"

	"github.com/afc96/passcheck/internal/strength"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONResult represents an evaluation result in JSON format
type JSONResult struct {
	PasswordLength int      `json:"password_length"`
	Tier           string   `json:"tier"`
	Score          int      `json:"score"`
	TooShort       bool     `json:"too_short"`
	Message        string   `json:"message"`
	Missing        []string `json:"missing,omitempty"`
	Weaknesses     []string `json:"weaknesses,omitempty"`
}

// Report outputs a single result as JSON
func (r *JSONReporter) Report(res strength.Result) error {
	out := JSONResult{
		PasswordLength: res.Length,
		Tier:           res.Tier.String(),
		Score:          res.Score,
		TooShort:       res.TooShort,
		Message:        res.Message(),
		Missing:        res.Missing,
		Weaknesses:     res.Weaknesses,
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
