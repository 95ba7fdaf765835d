package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestYAMLProviderLoadConfig(t *testing.T) {
	contents := `
http:
  listen_addr: 127.0.0.1
  port: 8090
profile_db: /var/lib/skyplan/profiles.db
storage:
  triplog:
    connection_string: host=localhost dbname=skyplan
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	provider := NewYAMLProvider(path)
	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.HTTP.ListenAddr != "127.0.0.1" || cfg.HTTP.Port != 8090 {
		t.Errorf("unexpected http config: %+v", cfg.HTTP)
	}
	if cfg.ProfileDB != "/var/lib/skyplan/profiles.db" {
		t.Errorf("unexpected profile db path: %q", cfg.ProfileDB)
	}
	if cfg.Storage.TripLog == nil || cfg.Storage.TripLog.ConnectionString != "host=localhost dbname=skyplan" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if !provider.IsReadOnly() {
		t.Error("YAML provider should be read-only")
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := provider.LoadConfig(); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestYAMLProviderSectionGetters(t *testing.T) {
	contents := "http:\n  port: 9000\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	provider := NewYAMLProvider(path)
	httpCfg, err := provider.GetHTTPConfig()
	if err != nil {
		t.Fatalf("GetHTTPConfig: %v", err)
	}
	if httpCfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", httpCfg.Port)
	}

	storage, err := provider.GetStorageConfig()
	if err != nil {
		t.Fatalf("GetStorageConfig: %v", err)
	}
	if storage.TripLog != nil {
		t.Errorf("expected no triplog backend, got %+v", storage.TripLog)
	}
}
