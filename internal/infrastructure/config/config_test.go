package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempConfig writes a YAML config file in a temp dir and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
site:
  id: terminal-1
  name: Newcastle Airport
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Site.Domain != "airport" {
		t.Errorf("Site.Domain = %q, want default %q", cfg.Site.Domain, "airport")
	}
	if cfg.Upstream.SummaryInterval != 5 {
		t.Errorf("Upstream.SummaryInterval = %d, want 5", cfg.Upstream.SummaryInterval)
	}
	if cfg.Upstream.SummaryRetryLimit != 3 {
		t.Errorf("Upstream.SummaryRetryLimit = %d, want 3", cfg.Upstream.SummaryRetryLimit)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
site:
  id: floor-3
  domain: supermarket
upstream:
  summary_interval: 10
  data_url: http://data.internal:5003
api:
  port: 9090
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Site.Domain != "supermarket" {
		t.Errorf("Site.Domain = %q, want supermarket", cfg.Site.Domain)
	}
	if cfg.Upstream.SummaryInterval != 10 {
		t.Errorf("Upstream.SummaryInterval = %d, want 10", cfg.Upstream.SummaryInterval)
	}
	if cfg.Upstream.DataURL != "http://data.internal:5003" {
		t.Errorf("Upstream.DataURL = %q", cfg.Upstream.DataURL)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want 9090", cfg.API.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
site:
  id: terminal-1
`)

	t.Setenv("AREAWATCH_SITE_DOMAIN", "supermarket")
	t.Setenv("AREAWATCH_UPSTREAM_DATA_URL", "http://env-data:5003")
	t.Setenv("AREAWATCH_API_PORT", "8181")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Site.Domain != "supermarket" {
		t.Errorf("Site.Domain = %q, want env override supermarket", cfg.Site.Domain)
	}
	if cfg.Upstream.DataURL != "http://env-data:5003" {
		t.Errorf("Upstream.DataURL = %q, want env override", cfg.Upstream.DataURL)
	}
	if cfg.API.Port != 8181 {
		t.Errorf("API.Port = %d, want 8181", cfg.API.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing file should return error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "missing site id",
			mutate:  func(c *Config) { c.Site.ID = "" },
			wantErr: "site.id",
		},
		{
			name:    "missing domain",
			mutate:  func(c *Config) { c.Site.Domain = "" },
			wantErr: "site.domain",
		},
		{
			name:    "missing data url",
			mutate:  func(c *Config) { c.Upstream.DataURL = "" },
			wantErr: "upstream.data_url",
		},
		{
			name:    "zero summary interval",
			mutate:  func(c *Config) { c.Upstream.SummaryInterval = 0 },
			wantErr: "upstream.summary_interval",
		},
		{
			name:    "bad api port",
			mutate:  func(c *Config) { c.API.Port = 70000 },
			wantErr: "api.port",
		},
		{
			name: "tls without cert",
			mutate: func(c *Config) {
				c.API.TLS.Enabled = true
			},
			wantErr: "api.tls.cert_file",
		},
		{
			name: "mqtt enabled bad qos",
			mutate: func(c *Config) {
				c.MQTT.Enabled = true
				c.MQTT.QoS = 5
			},
			wantErr: "mqtt.qos",
		},
		{
			name: "influx enabled missing bucket",
			mutate: func(c *Config) {
				c.InfluxDB.Enabled = true
				c.InfluxDB.URL = "http://localhost:8086"
				c.InfluxDB.Org = "areawatch"
			},
			wantErr: "influxdb.bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
