package match

import (
	"errors"
	"testing"
	"time"
)

// TestConfigValidate tests configuration validation
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"re2", func(c *Config) { c.Dialect = DialectRE2 }, false},
		{"ecmascript without timeout", func(c *Config) {
			c.Dialect = DialectECMAScript
			c.MatchTimeout = 0
		}, false},
		{"unknown dialect", func(c *Config) { c.Dialect = "pcre" }, true},
		{"empty dialect", func(c *Config) { c.Dialect = "" }, true},
		{"negative timeout", func(c *Config) { c.MatchTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}

			_, err = New(config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestDefaultConfig tests the documented defaults
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Dialect != DialectAuto {
		t.Errorf("Dialect = %q, want %q", config.Dialect, DialectAuto)
	}
	if config.MatchTimeout != DefaultMatchTimeout {
		t.Errorf("MatchTimeout = %v, want %v", config.MatchTimeout, DefaultMatchTimeout)
	}
	if !config.LiteralFastPath {
		t.Error("LiteralFastPath = false, want true")
	}
}
