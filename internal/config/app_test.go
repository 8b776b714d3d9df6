package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.Server.MaxBodyBytes, 1<<20)
	}
	if cfg.Auth.LoginBurst != 5 {
		t.Errorf("LoginBurst = %d, want 5", cfg.Auth.LoginBurst)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	content := `
server:
  addr: ":9090"
  request_timeout: 10s
  rate_limit: 50
auth:
  login_rate: 2
  login_burst: 8
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout.Std() != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.Server.RequestTimeout.Std())
	}
	if cfg.Server.RateLimit != 50 {
		t.Errorf("RateLimit = %d, want 50", cfg.Server.RateLimit)
	}
	// 未指定の項目はデフォルトのまま
	if cfg.Server.ShutdownTimeout.Std() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 30s", cfg.Server.ShutdownTimeout.Std())
	}
	if cfg.Auth.LoginBurst != 8 {
		t.Errorf("LoginBurst = %d, want 8", cfg.Auth.LoginBurst)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q, want env override :7070", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout.Std() != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.Server.RequestTimeout.Std())
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty addr", "server:\n  addr: \"\"\n"},
		{"negative timeout", "server:\n  request_timeout: -1s\n"},
		{"zero burst", "auth:\n  login_burst: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "app.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load should fail for invalid config")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/app.yaml"); err == nil {
		t.Error("Load should fail when the file does not exist")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}
