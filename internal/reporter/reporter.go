package reporter

import (
	"github.com/afc96/passcheck/internal/strength"
)

// Reporter defines the interface for outputting evaluation results
type Reporter interface {
	// Report outputs a single evaluation result
	Report(res strength.Result) error
}
