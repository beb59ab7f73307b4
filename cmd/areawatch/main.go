// Areawatch Core - Telemetry reconciliation and alerting engine
//
// This is the main entry point for the Areawatch Core application.
// Areawatch watches monitored physical areas (airport gates, supermarket
// aisles) through an upstream hardware platform:
//   - Reconciles raw device labels into a canonical sensor catalog
//   - Merges polled telemetry into a last-known-good cache and flags
//     sensors that stop reporting
//   - Evaluates operator-authored warning rules against live readings
//   - Serves the result over a REST API and WebSocket push
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/areawatch/areawatch-core/migrations"

	"github.com/areawatch/areawatch-core/internal/api"
	"github.com/areawatch/areawatch-core/internal/infrastructure/config"
	"github.com/areawatch/areawatch-core/internal/infrastructure/database"
	"github.com/areawatch/areawatch-core/internal/infrastructure/influxdb"
	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/infrastructure/mqtt"
	"github.com/areawatch/areawatch-core/internal/ingest"
	"github.com/areawatch/areawatch-core/internal/notify"
	"github.com/areawatch/areawatch-core/internal/poll"
	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
	"github.com/areawatch/areawatch-core/internal/upstream"
	"github.com/areawatch/areawatch-core/internal/warning"
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
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error { //nolint:gocognit // linear startup sequence
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Areawatch Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
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

	// Upstream platform client
	client := upstream.New(cfg.Upstream, log)

	// Warning rule store: local SQLite unless a remote warning service is
	// configured, in which case CRUD passes straight through to it.
	var rules warning.Repository
	if cfg.Upstream.WarningURL != "" {
		rules = upstream.NewRemoteRuleRepository(cfg.Upstream, log)
		log.Info("warning rules served by remote store", "url", cfg.Upstream.WarningURL)
	} else {
		rules = warning.NewSQLiteRepository(db.DB)
		log.Info("warning rules served by local store")
	}

	// Site content selects the display domain; the configured domain is the
	// fallback when the home service is unreachable at startup.
	domain := sensor.Domain(cfg.Site.Domain)
	site := upstream.SiteContent{Config: upstream.DomainConfig{Domain: cfg.Site.Domain}}
	if content, fetchErr := client.FetchSiteContent(ctx); fetchErr != nil {
		log.Warn("site content fetch failed, using configured domain", "error", fetchErr, "domain", domain)
	} else {
		site = *content
		domain = sensor.Domain(content.Config.Domain)
		log.Info("site content loaded", "domain", domain)
	}

	// Sensor catalog, seeded with the current device list when available.
	// The summary poll refreshes it every cycle from then on.
	catalog := sensor.NewCatalog(domain)
	if configs, fetchErr := client.FetchDeviceConfigs(ctx); fetchErr != nil {
		log.Warn("initial device config fetch failed, catalog starts with registry defaults", "error", fetchErr)
	} else {
		catalog.UpdateDevices(configs)
		log.Info("device catalog initialised", "devices", len(configs))
	}

	// Engine state
	cache := telemetry.NewCache()
	history := telemetry.NewHistory()
	queue := notify.NewQueue()

	// Connect to MQTT broker for the hardware ingest (optional)
	if cfg.MQTT.Enabled {
		mqttClient, mqttErr := mqtt.Connect(cfg.MQTT)
		if mqttErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", mqttErr)
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

		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})

		hardwareIngest := ingest.New(mqttClient, catalog, byte(cfg.MQTT.QoS), log)
		if startErr := hardwareIngest.Start(); startErr != nil {
			return fmt.Errorf("starting hardware ingest: %w", startErr)
		}
		log.Info("hardware ingest started")
	} else {
		log.Info("MQTT ingest disabled")
	}

	// Connect to InfluxDB for the environment history mirror (optional)
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
	} else {
		log.Info("InfluxDB disabled")
	}

	// Poll pipelines. The summary poll carries a nil mirror when InfluxDB
	// is disabled; a typed nil interface would dodge the nil checks inside
	// the pipeline, so the conversion is explicit.
	var mirror poll.TelemetryMirror
	if influxClient != nil {
		mirror = influxClient
	}

	messages := poll.NewMessageStore()
	summaryPipeline := poll.NewSummaryPipeline(client, client, catalog, cache, history, queue, mirror, cfg.Upstream.SummaryRetryLimit, log)
	warningPipeline := poll.NewWarningPipeline(rules, cache, queue, log)
	messagePipeline := poll.NewMessagePipeline(client, messages, log)

	pollCtx, stopPolls := context.WithCancel(ctx)
	defer stopPolls()

	go poll.NewPoller("summary", time.Duration(cfg.Upstream.SummaryInterval)*time.Second, log).
		Run(pollCtx, summaryPipeline.Tick)
	go poll.NewPoller("warnings", time.Duration(cfg.Upstream.WarningInterval)*time.Second, log).
		Run(pollCtx, warningPipeline.Tick)
	go poll.NewPoller("messages", time.Duration(cfg.Upstream.MessageInterval)*time.Second, log).
		Run(pollCtx, messagePipeline.Tick)
	log.Info("poll pipelines started",
		"summary_interval", cfg.Upstream.SummaryInterval,
		"warning_interval", cfg.Upstream.WarningInterval,
		"message_interval", cfg.Upstream.MessageInterval,
	)

	// API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Security: cfg.Security,
		Logger:   log,
		Catalog:  catalog,
		Cache:    cache,
		History:  history,
		Queue:    queue,
		Rules:    rules,
		Messages: messages,
		Site:     site,
		Sessions: client,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server
	// 2. InfluxDB (if enabled)
	// 3. MQTT (if enabled)
	// 4. Database

	log.Info("Areawatch Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses AREAWATCH_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("AREAWATCH_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
