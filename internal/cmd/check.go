package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afc96/passcheck/internal/reporter"
	"github.com/afc96/passcheck/internal/session"
	"github.com/afc96/passcheck/internal/strength"
)

var checkCmd = &cobra.Command{
	Use:   "check [password...]",
	Short: "Evaluate password strength",
	Long: `Evaluate one or more candidate passwords.

With arguments, each password is evaluated and reported in turn. With no
arguments an interactive session starts: passwords are read from the
terminal without echo and evaluated until you answer 'n'.

Examples:
  passcheck check 'Tr!ckyPh4se#91x'
  passcheck check --format json 'hunter2'
  passcheck check --config strict.yaml
  passcheck check`,
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadScoringConfig()
	if err != nil {
		return fmt.Errorf("failed to load scoring config: %w", err)
	}

	u := GetUI()
	evaluator := strength.New(cfg)

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u, cfg, verbose)
	}

	if len(args) > 0 {
		for _, password := range args {
			if err := rep.Report(evaluator.Evaluate(password)); err != nil {
				return err
			}
		}
		return nil
	}

	passwords := session.NewTerminalReader(os.Stdin, os.Stdout)
	s := &session.Session{
		Passwords: passwords,
		Confirm:   passwords.Lines(),
		Out:       os.Stdout,
		Evaluator: evaluator,
		Reporter:  rep,
	}
	return s.Run()
}
