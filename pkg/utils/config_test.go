package utils

import (
	"strings"
	"testing"
)

func TestConfigValidateRejectsShortSecret(t *testing.T) {
	cases := []struct {
		name   string
		secret string
		ok     bool
	}{
		{"empty", "", false},
		{"short", "tooshort", false},
		{"31 bytes", strings.Repeat("a", 31), false},
		{"32 bytes", strings.Repeat("a", 32), true},
		{"long", strings.Repeat("a", 64), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := &Config{Session: SessionConfig{Secret: tc.secret}}
			err := config.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	if (AppConfig{Env: "development"}).IsProduction() {
		t.Error("development reported as production")
	}
	if !(AppConfig{Env: "production"}).IsProduction() {
		t.Error("production not reported as production")
	}
}
