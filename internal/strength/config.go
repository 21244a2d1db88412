package strength

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines the scoring parameters for password evaluation.
// A Config is immutable once constructed; the evaluator only reads it,
// so a single Config may be shared across goroutines.
type Config struct {
	// MinLength is the minimum acceptable password length. Anything
	// shorter short-circuits to Very Weak without further scoring.
	MinLength int `yaml:"min_length"`

	// GoodLength is the length that earns the higher length score.
	GoodLength int `yaml:"good_length"`

	// Points awarded per satisfied criterion
	PointsGoodLength int `yaml:"points_good_length"`
	PointsMinLength  int `yaml:"points_min_length"`
	PointsLower      int `yaml:"points_lower"`
	PointsUpper      int `yaml:"points_upper"`
	PointsDigit      int `yaml:"points_digit"`
	PointsSpecial    int `yaml:"points_special"`

	// Penalties subtracted for detected weakness patterns
	PenaltySequence   int `yaml:"penalty_sequence"`
	PenaltyRepetition int `yaml:"penalty_repetition"`

	// Tier thresholds, strictly increasing. A final score <= ThresholdWeak
	// is Very Weak, <= ThresholdModerate is Weak, and so on; anything
	// above ThresholdVeryStrong is Very Strong.
	ThresholdWeak       int `yaml:"threshold_weak"`
	ThresholdModerate   int `yaml:"threshold_moderate"`
	ThresholdStrong     int `yaml:"threshold_strong"`
	ThresholdVeryStrong int `yaml:"threshold_very_strong"`
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		MinLength:           8,
		GoodLength:          12,
		PointsGoodLength:    2,
		PointsMinLength:     1,
		PointsLower:         1,
		PointsUpper:         1,
		PointsDigit:         1,
		PointsSpecial:       2,
		PenaltySequence:     1,
		PenaltyRepetition:   1,
		ThresholdWeak:       1,
		ThresholdModerate:   3,
		ThresholdStrong:     4,
		ThresholdVeryStrong: 5,
	}
}

// MaxScore returns the highest achievable final score: the good-length
// points plus every character-class point value.
func (c Config) MaxScore() int {
	return c.PointsGoodLength + c.PointsLower + c.PointsUpper + c.PointsDigit + c.PointsSpecial
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("min_length must be at least 1, got %d", c.MinLength)
	}
	if c.GoodLength < c.MinLength {
		return fmt.Errorf("good_length (%d) must be >= min_length (%d)", c.GoodLength, c.MinLength)
	}
	if !(c.ThresholdWeak < c.ThresholdModerate &&
		c.ThresholdModerate < c.ThresholdStrong &&
		c.ThresholdStrong < c.ThresholdVeryStrong) {
		return fmt.Errorf("tier thresholds must be strictly increasing: %d, %d, %d, %d",
			c.ThresholdWeak, c.ThresholdModerate, c.ThresholdStrong, c.ThresholdVeryStrong)
	}
	return nil
}

// LoadConfig reads a YAML scoring configuration from path. Fields omitted
// from the file keep their DefaultConfig values, so a file can override
// just the thresholds it cares about.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
