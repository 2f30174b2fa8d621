package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
http:
  address: ":8080"
database:
  host: "localhost"
  port: 5432
  user: "airdesk"
  password: "secret"
  name: "airdesk"
  ssl_mode: "disable"
kafka:
  brokers:
    - "localhost:9092"
booking:
  hold_ttl_seconds: 30
worker:
  audit_sweep_minutes: 5
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "host=localhost port=5432 user=airdesk password=secret dbname=airdesk sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 5*time.Minute, cfg.Worker.AuditSweepInterval())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWorkerConfig_AuditSweepInterval_Default(t *testing.T) {
	assert.Equal(t, 15*time.Minute, WorkerConfig{}.AuditSweepInterval())
	assert.Equal(t, 15*time.Minute, WorkerConfig{AuditSweepMinutes: -1}.AuditSweepInterval())
	assert.Equal(t, time.Minute, WorkerConfig{AuditSweepMinutes: 1}.AuditSweepInterval())
}
