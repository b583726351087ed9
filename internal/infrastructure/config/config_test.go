package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Tables.Quotes != "quotes" || cfg.Tables.Deposits != "deposits" {
		t.Fatalf("unexpected tables: %+v", cfg.Tables)
	}
	if cfg.Redis.CacheTTL != time.Hour {
		t.Fatalf("expected 1h cache ttl, got %v", cfg.Redis.CacheTTL)
	}
	if cfg.Budget.DepositRate != 0.30 {
		t.Fatalf("expected deposit rate 0.30, got %v", cfg.Budget.DepositRate)
	}
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTES_TABLE", "studio-quotes")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Tables.Quotes != "studio-quotes" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.CacheTTL != 15*time.Minute {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if !cfg.Payments.GatewayMock {
		t.Fatalf("expected mock gateway")
	}
}

func TestNew_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "eighty")
	if _, err := New(); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
}
