package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/afc96/passcheck/internal/strength"
	"github.com/afc96/passcheck/internal/ui"
)

// TerminalReporter renders results for humans, with tier colors when the
// output is a TTY
type TerminalReporter struct {
	w        io.Writer
	styles   *ui.Styles
	maxScore int
	verbose  bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, cfg strength.Config, verbose bool) *TerminalReporter {
	return &TerminalReporter{
		w:        w,
		styles:   u.Styles,
		maxScore: cfg.MaxScore(),
		verbose:  verbose,
	}
}

// Report outputs a single result
func (r *TerminalReporter) Report(res strength.Result) error {
	verdict := r.styles.Tier(res.Tier).Render(res.Message())
	if _, err := fmt.Fprintf(r.w, "Password Strength: %s\n", verdict); err != nil {
		return err
	}

	if !r.verbose {
		return nil
	}

	fmt.Fprintln(r.w, r.styles.Separator.Render(strings.Repeat("-", 37)))
	fmt.Fprintf(r.w, "%s %d\n", r.styles.Label.Render("length:"), res.Length)
	if res.TooShort {
		fmt.Fprintln(r.w, r.styles.Label.Render("scoring skipped: below minimum length"))
		return nil
	}
	fmt.Fprintf(r.w, "%s %d/%d\n", r.styles.Label.Render("score:"), res.Score, r.maxScore)
	if len(res.Missing) > 0 {
		fmt.Fprintf(r.w, "%s %s\n", r.styles.Label.Render("missing:"), strings.Join(res.Missing, ", "))
	}
	if len(res.Weaknesses) > 0 {
		fmt.Fprintf(r.w, "%s %s\n", r.styles.Label.Render("weaknesses:"), strings.Join(res.Weaknesses, ", "))
	}
	return nil
}
