package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.OracleProvider != "gemini" {
		t.Fatalf("unexpected provider: %q", cfg.OracleProvider)
	}
	if cfg.ATSMode != "strict" {
		t.Fatalf("unexpected mode: %q", cfg.ATSMode)
	}
	if cfg.OracleTimeout != 120*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.OracleTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowOrigin)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ORACLE_PROVIDER", "OpenAI")
	t.Setenv("ORACLE_MODEL", "gpt-4o-mini")
	t.Setenv("ORACLE_TIMEOUT_SECONDS", "30")
	t.Setenv("ATS_MODE", "HEURISTIC")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.OracleProvider != "openai" {
		t.Fatalf("unexpected provider: %q", cfg.OracleProvider)
	}
	if cfg.OracleModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", cfg.OracleModel)
	}
	if cfg.OracleTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.OracleTimeout)
	}
	if cfg.ATSMode != "heuristic" {
		t.Fatalf("unexpected mode: %q", cfg.ATSMode)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "http://b.test" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowOrigin)
	}
}

func TestNormalizeProviderFallsBackToGemini(t *testing.T) {
	for _, raw := range []string{"", "unknown", "GEMINI"} {
		if got := normalizeProvider(raw); got != "gemini" {
			t.Fatalf("normalizeProvider(%q) = %q", raw, got)
		}
	}
	if got := normalizeProvider(" OpenAI "); got != "openai" {
		t.Fatalf("normalizeProvider(OpenAI) = %q", got)
	}
}

func TestTimeoutSecondsRejectsGarbage(t *testing.T) {
	cases := map[string]time.Duration{
		"30":   30 * time.Second,
		"0":    120 * time.Second,
		"-5":   120 * time.Second,
		"soon": 120 * time.Second,
	}
	for raw, want := range cases {
		if got := timeoutSeconds(raw); got != want {
			t.Fatalf("timeoutSeconds(%q) = %v, want %v", raw, got, want)
		}
	}
}
