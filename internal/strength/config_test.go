package strength

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero min length", func(c *Config) { c.MinLength = 0 }, true},
		{"good below min", func(c *Config) { c.GoodLength = c.MinLength - 1 }, true},
		{"equal thresholds", func(c *Config) { c.ThresholdModerate = c.ThresholdWeak }, true},
		{"descending thresholds", func(c *Config) { c.ThresholdVeryStrong = 0 }, true},
		{"custom valid", func(c *Config) {
			c.MinLength = 10
			c.GoodLength = 16
			c.ThresholdWeak = 2
			c.ThresholdModerate = 4
			c.ThresholdStrong = 6
			c.ThresholdVeryStrong = 8
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "strength.yaml")

	content := `min_length: 10
good_length: 14
points_special: 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.MinLength != 10 {
		t.Errorf("MinLength = %d, want 10", cfg.MinLength)
	}
	if cfg.GoodLength != 14 {
		t.Errorf("GoodLength = %d, want 14", cfg.GoodLength)
	}
	if cfg.PointsSpecial != 3 {
		t.Errorf("PointsSpecial = %d, want 3", cfg.PointsSpecial)
	}

	// Omitted fields keep defaults.
	def := DefaultConfig()
	if cfg.PointsLower != def.PointsLower {
		t.Errorf("PointsLower = %d, want default %d", cfg.PointsLower, def.PointsLower)
	}
	if cfg.ThresholdVeryStrong != def.ThresholdVeryStrong {
		t.Errorf("ThresholdVeryStrong = %d, want default %d", cfg.ThresholdVeryStrong, def.ThresholdVeryStrong)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(tmpDir, "nope.yaml")); err == nil {
			t.Error("LoadConfig() = nil error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.yaml")
		if err := os.WriteFile(path, []byte("min_length: [not a number"), 0o644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() = nil error for malformed yaml")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(tmpDir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("good_length: 4\n"), 0o644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() = nil error for good_length below min_length")
		}
	})
}
