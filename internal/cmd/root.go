package cmd

import (
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/afc96/passcheck/internal/strength"
	"github.com/afc96/passcheck/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
)

var RootCmd = &cobra.Command{
	Use:   "passcheck",
	Short: "A heuristic password strength checker",
	Long: `passcheck evaluates candidate passwords against a set of
heuristic criteria: length, character-class coverage, ascending
sequences, and character repetitions.

It is an advisory tool for account-creation flows, not an entropy
estimator: the verdict is one of five strength tiers plus concrete
suggestions for improvement.`,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Include the score breakdown in output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML scoring configuration file")
}

var (
	uiOnce   sync.Once
	globalUI *ui.UI
)

// GetUI returns the process-wide UI, built once from the format flag
func GetUI() *ui.UI {
	uiOnce.Do(func() {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return globalUI
}

// loadScoringConfig resolves the scoring configuration from the --config
// flag, falling back to the defaults
func loadScoringConfig() (strength.Config, error) {
	if configPath == "" {
		return strength.DefaultConfig(), nil
	}
	return strength.LoadConfig(configPath)
}
