package influxdb_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/calebmv/netweave-core/internal/infrastructure/config"
	"github.com/calebmv/netweave-core/internal/infrastructure/influxdb"
)

// testConfig matches the local dev InfluxDB from docker-compose.yml.
func testConfig() config.InfluxDBConfig {
	return config.InfluxDBConfig{
		Enabled:       true,
		URL:           "http://127.0.0.1:8086",
		Token:         "netweave-dev-token",
		Org:           "netweave",
		Bucket:        "events",
		BatchSize:     100,
		FlushInterval: 1,
	}
}

// connectOrSkip skips the test when no local InfluxDB is reachable.
func connectOrSkip(t *testing.T, cfg config.InfluxDBConfig) *influxdb.Client {
	t.Helper()
	client, err := influxdb.Connect(cfg)
	if err != nil {
		t.Skipf("InfluxDB not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// errorRecorder captures asynchronous write errors.
type errorRecorder struct {
	mu  sync.Mutex
	err error
}

func (r *errorRecorder) record(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *errorRecorder) get() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func TestConnect(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	if !client.IsConnected() {
		t.Error("IsConnected() = false after Connect()")
	}
}

func TestConnect_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := testConfig()
	cfg.URL = "http://127.0.0.1:59999"

	if _, err := influxdb.Connect(cfg); err == nil {
		t.Fatal("Connect() should fail for an unreachable server")
	}
}

func TestConnect_BatchSettingDefaults(t *testing.T) {
	// Zero and negative batch settings fall back to sane defaults.
	cfg := testConfig()
	cfg.BatchSize = 0
	cfg.FlushInterval = -1

	client := connectOrSkip(t, cfg)
	if !client.IsConnected() {
		t.Error("IsConnected() = false with defaulted batch settings")
	}
}

func TestHealthCheck(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestHealthCheck_Cancelled(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() should fail for a cancelled context")
	}
}

func TestWriteProfileEvent(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	rec := &errorRecorder{}
	client.SetOnError(rec.record)

	client.WriteProfileEvent("added", "6fd0cf30-f1a9-4b04-8120-b0299f8cbb0e", "Office Wi-Fi", "802-11-wireless")
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := rec.get(); err != nil {
		t.Errorf("write error = %v", err)
	}
}

func TestWriteProfileCount(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	rec := &errorRecorder{}
	client.SetOnError(rec.record)

	client.WriteProfileCount(7)
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := rec.get(); err != nil {
		t.Errorf("write error = %v", err)
	}
}

func TestWritePoint(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	rec := &errorRecorder{}
	client.SetOnError(rec.record)

	client.WritePoint(
		"custom_measurement",
		map[string]string{"source": "test"},
		map[string]interface{}{"value": 99.9, "count": 5},
	)
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := rec.get(); err != nil {
		t.Errorf("write error = %v", err)
	}
}

func TestWritePointWithTime(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	rec := &errorRecorder{}
	client.SetOnError(rec.record)

	client.WritePointWithTime(
		"custom_measurement",
		map[string]string{"source": "test-with-time"},
		map[string]interface{}{"value": 88.8},
		time.Now().Add(-1*time.Hour),
	)
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := rec.get(); err != nil {
		t.Errorf("write error = %v", err)
	}
}

func TestClose(t *testing.T) {
	cfg := testConfig()
	client, err := influxdb.Connect(cfg)
	if err != nil {
		t.Skipf("InfluxDB not available: %v", err)
	}

	client.WriteProfileCount(1)

	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if client.IsConnected() {
		t.Error("IsConnected() = true after Close()")
	}

	// Flush after Close must be a quiet no-op.
	client.Flush()
}
