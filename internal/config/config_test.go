package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "SESSION_TTL_MINUTES", "API_PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.GeminiModel != "gemini-3-flash-preview" {
		t.Errorf("GeminiModel = %q, want gemini-3-flash-preview", cfg.GeminiModel)
	}
	if cfg.SessionTTL != 120*time.Minute {
		t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
	}
	if cfg.APIPort != "3000" {
		t.Errorf("APIPort = %q, want 3000", cfg.APIPort)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "15")
	t.Setenv("GENERATE_RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("AUDIT_RETENTION_DAYS", "7")

	cfg := Load()

	if cfg.GeminiAPIKey != "legacy-key" {
		t.Errorf("GeminiAPIKey = %q, want legacy-key", cfg.GeminiAPIKey)
	}
	if cfg.GeminiTimeout != 15*time.Second {
		t.Errorf("GeminiTimeout = %v, want 15s", cfg.GeminiTimeout)
	}
	if cfg.GenerateRateLimit != 10 {
		t.Errorf("GenerateRateLimit = %d, want fallback 10", cfg.GenerateRateLimit)
	}
	if cfg.AuditRetention != 7*24*time.Hour {
		t.Errorf("AuditRetention = %v, want 168h", cfg.AuditRetention)
	}
}

func TestLoadNonPositivePurgeInterval(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Setenv("AUDIT_PURGE_INTERVAL_MINUTES", v)

		cfg := Load()

		if cfg.AuditPurgeInterval != time.Hour {
			t.Errorf("AUDIT_PURGE_INTERVAL_MINUTES=%s: AuditPurgeInterval = %v, want 1h", v, cfg.AuditPurgeInterval)
		}
	}
}
