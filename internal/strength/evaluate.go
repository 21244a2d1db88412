package strength

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// specialCharacters is the ASCII punctuation set counted as the
// special-character class.
const specialCharacters = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Labels for the missing-criteria and weakness feedback fragments.
const (
	missingLower   = "lowercase letters"
	missingUpper   = "uppercase letters"
	missingDigit   = "numbers"
	missingSpecial = "special characters (!@#...)"

	weaknessSequence   = "contains sequences (like 'abc' or '123')"
	weaknessRepetition = "contains repetitions (like 'aaa' or '111')"
)

// Result holds the outcome of evaluating a single password. It is fully
// determined by the password and the Config that produced it.
type Result struct {
	// Tier is the assigned strength category.
	Tier Tier

	// Score is the final score after penalties, floored at zero. It is
	// zero when TooShort is set since scoring never ran.
	Score int

	// Length is the password length in code points.
	Length int

	// TooShort indicates the password failed the minimum-length gate.
	TooShort bool

	// Missing lists the character classes the password lacks, in check
	// order: lowercase, uppercase, digits, special.
	Missing []string

	// Weaknesses lists detected patterns, sequences before repetitions.
	Weaknesses []string

	cfg Config
}

// Evaluator scores passwords against a fixed Config. The zero value is not
// usable; construct with New. Evaluator is stateless and safe for
// concurrent use.
type Evaluator struct {
	cfg Config
}

// New returns an Evaluator using the given configuration.
func New(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate scores a single password. It never fails: every string,
// including the empty string, maps to a Result.
func (e *Evaluator) Evaluate(password string) Result {
	cfg := e.cfg
	length := utf8.RuneCountInString(password)

	res := Result{Length: length, cfg: cfg}

	// Minimum-length gate: the sole early exit.
	if length < cfg.MinLength {
		res.Tier = VeryWeak
		res.TooShort = true
		return res
	}

	score := 0

	if length >= cfg.GoodLength {
		score += cfg.PointsGoodLength
	} else {
		score += cfg.PointsMinLength
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specialCharacters, r) {
			hasSpecial = true
		}
	}

	criteria := []struct {
		present bool
		points  int
		missing string
	}{
		{hasLower, cfg.PointsLower, missingLower},
		{hasUpper, cfg.PointsUpper, missingUpper},
		{hasDigit, cfg.PointsDigit, missingDigit},
		{hasSpecial, cfg.PointsSpecial, missingSpecial},
	}
	for _, c := range criteria {
		if c.present {
			score += c.points
		} else {
			res.Missing = append(res.Missing, c.missing)
		}
	}

	penalty := 0
	if DetectSequences(password, DefaultWindow) {
		penalty += cfg.PenaltySequence
		res.Weaknesses = append(res.Weaknesses, weaknessSequence)
	}
	if DetectRepetitions(password, DefaultWindow) {
		penalty += cfg.PenaltyRepetition
		res.Weaknesses = append(res.Weaknesses, weaknessRepetition)
	}

	res.Score = max(0, score-penalty)
	res.Tier = cfg.classify(res.Score)
	return res
}

// classify maps a final score to a tier by walking the thresholds in
// ascending order.
func (c Config) classify(score int) Tier {
	switch {
	case score <= c.ThresholdWeak:
		return VeryWeak
	case score <= c.ThresholdModerate:
		return Weak
	case score <= c.ThresholdStrong:
		return Moderate
	case score <= c.ThresholdVeryStrong:
		return Strong
	default:
		return VeryStrong
	}
}

// Message renders the result as the canonical feedback string: the tier
// name, optionally followed by a parenthesized semicolon-joined list of
// suggestions.
func (r Result) Message() string {
	if r.TooShort {
		return fmt.Sprintf("Very Weak (Too Short - minimum %d characters recommended)", r.cfg.MinLength)
	}

	var details []string
	if len(r.Missing) > 0 {
		details = append(details, "consider adding: "+strings.Join(r.Missing, ", "))
	}
	if r.Length < r.cfg.GoodLength && r.Tier != Strong && r.Tier != VeryStrong {
		details = append(details, fmt.Sprintf("consider increasing length to %d+ characters", r.cfg.GoodLength))
	}
	if len(r.Weaknesses) > 0 {
		details = append(details, "avoid patterns like: "+strings.Join(r.Weaknesses, ", "))
	}

	if len(details) == 0 {
		return r.Tier.String()
	}
	return fmt.Sprintf("%s (%s)", r.Tier, strings.Join(details, "; "))
}
