// netweave - network connection profile daemon
//
// This is the main entry point for the netweave daemon. netweave owns
// the set of network connection profiles on a host: it loads them from
// SQLite, verifies and caches them, answers secrets queries, and
// publishes profile lifecycle events over MQTT with optional history in
// InfluxDB.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/calebmv/netweave-core/migrations"
	_ "github.com/calebmv/netweave-core/internal/settings"

	"github.com/calebmv/netweave-core/internal/audit"
	"github.com/calebmv/netweave-core/internal/infrastructure/config"
	"github.com/calebmv/netweave-core/internal/infrastructure/database"
	"github.com/calebmv/netweave-core/internal/infrastructure/influxdb"
	"github.com/calebmv/netweave-core/internal/infrastructure/logging"
	"github.com/calebmv/netweave-core/internal/infrastructure/mqtt"
	"github.com/calebmv/netweave-core/internal/profile"
	"github.com/calebmv/netweave-core/internal/store"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting netweave",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Registry misses during deserialization are worth a line in the log.
	profile.SetLogger(log)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Connect to MQTT broker (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetLogger(log)
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
	} else {
		log.Info("InfluxDB disabled")
	}

	// Initialise the profile manager
	repo := store.NewSQLiteRepository(db.DB)
	auditRepo := audit.NewSQLiteRepository(db.DB)
	sink := &eventSink{
		ctx:    ctx,
		mqtt:   mqttClient,
		influx: influxClient,
		audit:  auditRepo,
		qos:    byte(cfg.MQTT.QoS),
		log:    log,
	}
	manager := store.NewManager(repo,
		store.WithEventSink(sink),
		store.WithLogger(log),
	)
	if loadErr := manager.Load(ctx); loadErr != nil {
		return fmt.Errorf("loading profile manager: %w", loadErr)
	}
	log.Info("profile manager initialised", "profiles", manager.Count())

	if influxClient != nil {
		influxClient.WriteProfileCount(manager.Count())
	}

	// Verify infrastructure connections are healthy
	if err := healthCheck(ctx, db, mqttClient, influxClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls will run in reverse order:
	// 1. InfluxDB (if enabled)
	// 2. MQTT (if enabled)
	// 3. Database

	log.Info("netweave stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses NETWEAVE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("NETWEAVE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if mqttClient != nil {
		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	return nil
}

// profileEventPayload is the JSON body published for lifecycle events.
// It carries identity only; settings and secrets stay off the bus.
type profileEventPayload struct {
	UUID      string `json:"uuid"`
	ID        string `json:"id,omitempty"`
	Type      string `json:"type,omitempty"`
	Event     string `json:"event"`
	Setting   string `json:"setting,omitempty"`
	Timestamp string `json:"timestamp"`
}

// eventSink adapts the MQTT client, InfluxDB client, and audit trail to
// the store's EventSink interface. Either client may be nil when disabled.
type eventSink struct {
	ctx    context.Context
	mqtt   *mqtt.Client
	influx *influxdb.Client
	audit  audit.Repository
	qos    byte
	log    *logging.Logger
}

// ProfileAdded implements store.EventSink.
func (s *eventSink) ProfileAdded(rec *store.Record) {
	s.publish(mqtt.ProfileEventAdded, rec.UUID, rec.ID, rec.Type)
}

// ProfileUpdated implements store.EventSink.
func (s *eventSink) ProfileUpdated(rec *store.Record) {
	s.publish(mqtt.ProfileEventUpdated, rec.UUID, rec.ID, rec.Type)
}

// ProfileRemoved implements store.EventSink.
func (s *eventSink) ProfileRemoved(uuid string) {
	s.publish(mqtt.ProfileEventRemoved, uuid, "", "")
}

// ProfileSecretsUpdated implements store.EventSink. The payload names the
// setting whose secrets changed; the secrets themselves never leave the
// store.
func (s *eventSink) ProfileSecretsUpdated(rec *store.Record, settingName string) {
	if s.audit != nil {
		err := s.audit.Record(s.ctx, &audit.Entry{
			Action:      audit.ActionSecretsUpdated,
			ProfileUUID: rec.UUID,
			ProfileID:   rec.ID,
			ProfileType: rec.Type,
			Details:     map[string]any{"setting": settingName},
		})
		if err != nil {
			s.log.Warn("recording audit entry", "uuid", rec.UUID, "error", err)
		}
	}
	if s.influx != nil {
		s.influx.WriteProfileEvent(audit.ActionSecretsUpdated, rec.UUID, rec.ID, rec.Type)
	}
	if s.mqtt == nil {
		return
	}

	payload, err := json.Marshal(profileEventPayload{
		UUID:      rec.UUID,
		ID:        rec.ID,
		Type:      rec.Type,
		Event:     audit.ActionSecretsUpdated,
		Setting:   settingName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Error("marshalling profile event", "error", err)
		return
	}

	topic := mqtt.Topics{}.ProfileSecrets(rec.UUID)
	if err := s.mqtt.Publish(topic, payload, s.qos, false); err != nil {
		s.log.Warn("publishing profile event", "topic", topic, "error", err)
	}
}

func (s *eventSink) publish(event, uuid, id, ctype string) {
	if s.audit != nil {
		err := s.audit.Record(s.ctx, &audit.Entry{
			Action:      event,
			ProfileUUID: uuid,
			ProfileID:   id,
			ProfileType: ctype,
		})
		if err != nil {
			s.log.Warn("recording audit entry", "uuid", uuid, "error", err)
		}
	}
	if s.influx != nil {
		s.influx.WriteProfileEvent(event, uuid, id, ctype)
	}
	if s.mqtt == nil {
		return
	}

	payload, err := json.Marshal(profileEventPayload{
		UUID:      uuid,
		ID:        id,
		Type:      ctype,
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Error("marshalling profile event", "error", err)
		return
	}

	topic := mqtt.Topics{}.ProfileEvent(event, uuid)
	if err := s.mqtt.Publish(topic, payload, s.qos, false); err != nil {
		s.log.Warn("publishing profile event", "topic", topic, "error", err)
	}
}
