package client

import (
	"os"
	"testing"
	"time"
)

// unsetEnv removes keys for the duration of the test. envconfig treats a set
// but empty variable as a value, so t.Setenv(key, "") is not enough.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		for _, key := range []string{"GS2_" + k, k} {
			if old, ok := os.LookupEnv(key); ok {
				t.Cleanup(func() { _ = os.Setenv(key, old) })
			}
			_ = os.Unsetenv(key)
		}
	}
}

var configKeys = []string{"CLIENT_ID", "CLIENT_SECRET", "REGION", "ENDPOINT", "BASE_URL", "HTTP_TIMEOUT", "DEBUG"}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("GS2_CLIENT_ID", "id")
	t.Setenv("GS2_CLIENT_SECRET", "c2VjcmV0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Region != "ap-northeast-1" || cfg.Endpoint != DefaultEndpoint {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HTTPTimeout != 30*time.Second || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	c, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if got := c.BaseURL(); got != "https://realtime.ap-northeast-1.gs2io.com" {
		t.Fatalf("base URL = %q", got)
	}
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	unsetEnv(t, configKeys...)
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error without credentials")
	}
	if _, err := NewFromEnv(); err == nil {
		t.Fatalf("expected error without credentials")
	}
}

func TestNewFromEnv_Overrides(t *testing.T) {
	unsetEnv(t, configKeys...)
	t.Setenv("GS2_CLIENT_ID", "id")
	t.Setenv("GS2_CLIENT_SECRET", "c2VjcmV0")
	t.Setenv("GS2_REGION", "us-east-1")
	t.Setenv("GS2_BASE_URL", "http://localhost:9000")
	t.Setenv("GS2_HTTP_TIMEOUT", "2s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if got := c.BaseURL(); got != "http://localhost:9000" {
		t.Fatalf("base URL = %q", got)
	}
	if c.http.Timeout != 2*time.Second {
		t.Fatalf("timeout = %s", c.http.Timeout)
	}
}
