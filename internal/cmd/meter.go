package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afc96/passcheck/internal/strength"
)

var meterCmd = &cobra.Command{
	Use:   "meter",
	Short: "Live password strength meter",
	Long: `Open a live strength meter: type a password (masked) and watch
the score bar and verdict update with every keystroke.

Examples:
  passcheck meter
  passcheck meter --config strict.yaml`,
	Args:         cobra.NoArgs,
	RunE:         runMeter,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(meterCmd)
}

func runMeter(cmd *cobra.Command, args []string) error {
	cfg, err := loadScoringConfig()
	if err != nil {
		return fmt.Errorf("failed to load scoring config: %w", err)
	}

	u := GetUI()
	if !u.IsInteractive() {
		return fmt.Errorf("meter requires an interactive terminal (TTY); use 'check' for piped input")
	}

	return u.RunMeter(strength.New(cfg), cfg)
}
