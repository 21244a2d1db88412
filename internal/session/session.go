// Package session implements the interactive check loop: read a password
// without echo, evaluate it, report, and repeat until the user declines.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/afc96/passcheck/internal/reporter"
	"github.com/afc96/passcheck/internal/strength"
)

// PasswordReader supplies candidate passwords. Implementations should not
// echo the input back to the terminal.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

// Session runs the interactive read-eval loop. The evaluator stays pure;
// all terminal concerns live here.
type Session struct {
	Passwords PasswordReader
	Confirm   io.Reader
	Out       io.Writer
	Evaluator *strength.Evaluator
	Reporter  reporter.Reporter

	// Now supplies the session-end timestamp; defaults to time.Now.
	Now func() time.Time
}

// Run executes the loop until the user answers "n" or input is exhausted.
func (s *Session) Run() error {
	now := s.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintln(s.Out, "--- Password Strength Checker ---")
	fmt.Fprintln(s.Out, "Checks length, character types, sequences, and repetitions.")
	fmt.Fprintln(s.Out, "Answer 'n' when asked to continue to quit.")

	confirm := bufio.NewReader(s.Confirm)

	for {
		password, err := s.Passwords.ReadPassword("\nEnter the password to evaluate: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read password: %w", err)
		}

		if password == "" {
			fmt.Fprintln(s.Out, "No password entered. Please try again.")
			continue
		}

		res := s.Evaluator.Evaluate(password)
		if err := s.Reporter.Report(res); err != nil {
			return err
		}

		fmt.Fprint(s.Out, "\nCheck another password? (y/n): ")
		answer, err := confirm.ReadString('\n')
		if err != nil && answer == "" {
			break
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "n") {
			break
		}
	}

	fmt.Fprintln(s.Out, "\nExiting.")
	fmt.Fprintf(s.Out, "Session ended %s\n", now().Format("Mon, 02 Jan 2006 at 03:04 PM"))
	return nil
}

// TerminalReader reads passwords from a terminal without echoing. When the
// input is not a TTY (piped input) it falls back to plain line reading.
type TerminalReader struct {
	In  *os.File
	Out io.Writer

	lines *bufio.Reader
}

// NewTerminalReader creates a reader over the given input file
func NewTerminalReader(in *os.File, out io.Writer) *TerminalReader {
	return &TerminalReader{In: in, Out: out, lines: bufio.NewReader(in)}
}

// Lines exposes the reader's buffered line reader so confirmation prompts
// can share the same input stream without losing buffered bytes.
func (r *TerminalReader) Lines() io.Reader {
	return r.lines
}

// ReadPassword prompts and reads one password
func (r *TerminalReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.Out, prompt)

	fd := int(r.In.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(r.Out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
