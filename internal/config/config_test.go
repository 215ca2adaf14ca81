package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "TABLE_PREFIX", "PAGE_SIZE", "LINK_STRATEGY", "POLL_INTERVAL", "GRAPHQL_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Environment != "dev" || cfg.TablePrefix != "dev_" {
		t.Errorf("environment = %q prefix = %q", cfg.Environment, cfg.TablePrefix)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.LinkStrategy != LinkStrategyChild {
		t.Errorf("LinkStrategy = %q", cfg.LinkStrategy)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %s", cfg.PollInterval)
	}
	if !cfg.InMemoryAPI() {
		t.Error("InMemoryAPI() = false without GRAPHQL_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "page size is capped",
			env:  map[string]string{"PAGE_SIZE": "5000"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.PageSize != DefaultPageSize {
					t.Errorf("PageSize = %d", cfg.PageSize)
				}
			},
		},
		{
			name: "array strategy",
			env:  map[string]string{"LINK_STRATEGY": "array"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LinkStrategy != LinkStrategyArray {
					t.Errorf("LinkStrategy = %q", cfg.LinkStrategy)
				}
			},
		},
		{
			name: "unknown strategy falls back",
			env:  map[string]string{"LINK_STRATEGY": "graph"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.LinkStrategy != LinkStrategyChild {
					t.Errorf("LinkStrategy = %q", cfg.LinkStrategy)
				}
			},
		},
		{
			name: "prod prefix and durations",
			env:  map[string]string{"ENVIRONMENT": "prod", "TABLE_PREFIX": "", "SESSION_TTL": "90m"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.TablePrefix != "prod_" || !cfg.SecureCookies() {
					t.Errorf("prefix = %q secure = %v", cfg.TablePrefix, cfg.SecureCookies())
				}
				if cfg.SessionTTL != 90*time.Minute {
					t.Errorf("SessionTTL = %s", cfg.SessionTTL)
				}
			},
		},
		{
			name: "remote api",
			env:  map[string]string{"GRAPHQL_URL": "https://api.example.com/graphql"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.InMemoryAPI() {
					t.Error("InMemoryAPI() = true with GRAPHQL_URL")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, Load())
		})
	}
}
