package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/afc96/passcheck/internal/strength"
	"github.com/afc96/passcheck/internal/ui"
)

func evaluate(t *testing.T, password string) strength.Result {
	t.Helper()
	return strength.New(strength.DefaultConfig()).Evaluate(password)
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")
	rep := NewTerminalReporter(&buf, u, strength.DefaultConfig(), false)

	if err := rep.Report(evaluate(t, "aaaaaaaa")); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Password Strength: ") {
		t.Errorf("output = %q, want Password Strength prefix", out)
	}
	if !strings.Contains(out, "Very Weak") {
		t.Errorf("output = %q, want tier name", out)
	}
	if !strings.Contains(out, "avoid patterns like: contains repetitions (like 'aaa' or '111')") {
		t.Errorf("output = %q, want repetition feedback", out)
	}
}

func TestTerminalReporterVerbose(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")
	rep := NewTerminalReporter(&buf, u, strength.DefaultConfig(), true)

	if err := rep.Report(evaluate(t, "Mixed4Case19")); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "score: 5/7") {
		t.Errorf("output = %q, want score breakdown", out)
	}
	if !strings.Contains(out, "length: 12") {
		t.Errorf("output = %q, want length line", out)
	}
	if !strings.Contains(out, "missing: special characters (!@#...)") {
		t.Errorf("output = %q, want missing line", out)
	}
}

func TestTerminalReporterVerboseTooShort(t *testing.T) {
	var buf bytes.Buffer
	u := ui.New(&buf, &buf, "terminal")
	rep := NewTerminalReporter(&buf, u, strength.DefaultConfig(), true)

	if err := rep.Report(evaluate(t, "short")); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Too Short - minimum 8 characters recommended") {
		t.Errorf("output = %q, want too-short message", out)
	}
	if !strings.Contains(out, "scoring skipped") {
		t.Errorf("output = %q, want skipped-scoring note", out)
	}
	if strings.Contains(out, "score:") {
		t.Errorf("output = %q, should not include a score for too-short input", out)
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporter(&buf)

	if err := rep.Report(evaluate(t, "Abcdef1!")); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var out JSONResult
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Tier != "Strong" {
		t.Errorf("Tier = %q, want %q", out.Tier, "Strong")
	}
	if out.Score != 5 {
		t.Errorf("Score = %d, want 5", out.Score)
	}
	if out.PasswordLength != 8 {
		t.Errorf("PasswordLength = %d, want 8", out.PasswordLength)
	}
	if out.TooShort {
		t.Error("TooShort = true, want false")
	}
	if len(out.Weaknesses) != 1 {
		t.Errorf("Weaknesses = %v, want one entry", out.Weaknesses)
	}
	if out.Message != "Strong (avoid patterns like: contains sequences (like 'abc' or '123'))" {
		t.Errorf("Message = %q, unexpected", out.Message)
	}
}
