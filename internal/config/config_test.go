package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

// inTempDir runs the test from an empty directory so no arena.yaml or .env
// from the repository is picked up
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		Server:      ServerConfig{Port: 8080, DBPath: "arena.db"},
		Log:         LogConfig{Level: "info", Env: "local"},
		Redis:       RedisConfig{TTL: 30 * time.Second},
		Kafka:       KafkaConfig{Topic: "arena.wallet"},
		Preferences: PreferencesConfig{Path: "arena-preferences.yaml"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, filepath.Join(dir, "arena.yaml"), `
server:
  port: 9090
  db: /data/arena.db
  nokeyboard: true
log:
  level: debug
  env: prod
redis:
  addr: localhost:6379
  ttl: 1m
kafka:
  brokers: k1:9092,k2:9092
`)

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Server.DBPath != "/data/arena.db" || !cfg.Server.NoKeyboard {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Log != (LogConfig{Level: "debug", Env: "prod"}) {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Redis != (RedisConfig{Addr: "localhost:6379", TTL: time.Minute}) {
		t.Errorf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.Kafka.Brokers != "k1:9092,k2:9092" || cfg.Kafka.Topic != "arena.wallet" {
		t.Errorf("unexpected kafka config %+v", cfg.Kafka)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "server:\n  port: 7000\n")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}

	if _, err := Load(New(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, filepath.Join(dir, "arena.yaml"), "server:\n  port: 9090\n  db: file.db\nlog:\n  level: warn\n")
	t.Setenv("ARENA_SERVER_PORT", "9191")
	t.Setenv("ARENA_LOG_LEVEL", "error")

	v := New()
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	if err := v.BindPFlag("server.port", flags.Lookup("port")); err != nil {
		t.Fatal(err)
	}
	if err := flags.Parse([]string{"--port", "9292"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(v, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9292 {
		t.Errorf("flag should win, got port %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("env should beat file, got level %q", cfg.Log.Level)
	}
	if cfg.Server.DBPath != "file.db" {
		t.Errorf("file should beat default, got db %q", cfg.Server.DBPath)
	}
}

func TestLoad_UnsetFlagKeepsEnv(t *testing.T) {
	inTempDir(t)
	t.Setenv("ARENA_SERVER_PORT", "9191")

	v := New()
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.Int("port", 8080, "")
	v.BindPFlag("server.port", flags.Lookup("port"))
	flags.Parse(nil)

	cfg, err := Load(v, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected env port, got %d", cfg.Server.Port)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, filepath.Join(dir, ".env"), "ARENA_KAFKA_TOPIC=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("ARENA_KAFKA_TOPIC") })

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Kafka.Topic != "from-dotenv" {
		t.Errorf("expected topic from .env, got %q", cfg.Kafka.Topic)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, filepath.Join(dir, "arena.yaml"), "server: [unclosed\n")

	if _, err := Load(New(), ""); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080, DBPath: "arena.db"},
			Log:    LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"valid", func(*Config) {}, ""},
		{"warning alias", func(c *Config) { c.Log.Level = "WARNING" }, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "invalid port"},
		{"port too big", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"blank db", func(c *Config) { c.Server.DBPath = "  " }, "database path"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "unknown log level"},
		{"negative ttl", func(c *Config) { c.Redis.TTL = -time.Second }, "ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
