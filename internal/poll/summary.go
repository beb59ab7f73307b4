package poll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/notify"
	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
	"github.com/areawatch/areawatch-core/internal/warning"
)

// SummarySource fetches the latest telemetry summary.
type SummarySource interface {
	FetchSummary(ctx context.Context) (map[string]*telemetry.AreaSnapshot, error)
}

// ConfigSource fetches the current device configuration list.
type ConfigSource interface {
	FetchDeviceConfigs(ctx context.Context) ([]sensor.DeviceConfig, error)
}

// TelemetryMirror receives every reading for long-term retention. The
// InfluxDB client satisfies this; a nil mirror disables mirroring.
type TelemetryMirror interface {
	WriteEnvironmentReading(areaID, channel string, value float64, timestamp time.Time)
	WriteOccupancyCount(areaID, sensorKey string, count int, timestamp time.Time)
}

// SummaryPipeline is the summary poll's tick: refresh the device catalog,
// fetch telemetry, merge, detect disconnections, record history, mirror
// readings, raise notifications.
type SummaryPipeline struct {
	source     SummarySource
	configs    ConfigSource
	catalog    *sensor.Catalog
	cache      *telemetry.Cache
	history    *telemetry.History
	queue      *notify.Queue
	mirror     TelemetryMirror
	retryLimit int
	failures   int
	logger     *logging.Logger
	now        func() time.Time
}

// NewSummaryPipeline wires a summary pipeline. mirror may be nil. A nil
// configs source or catalog disables the per-tick catalog refresh.
func NewSummaryPipeline(
	source SummarySource,
	configs ConfigSource,
	catalog *sensor.Catalog,
	cache *telemetry.Cache,
	history *telemetry.History,
	queue *notify.Queue,
	mirror TelemetryMirror,
	retryLimit int,
	logger *logging.Logger,
) *SummaryPipeline {
	return &SummaryPipeline{
		source:     source,
		configs:    configs,
		catalog:    catalog,
		cache:      cache,
		history:    history,
		queue:      queue,
		mirror:     mirror,
		retryLimit: retryLimit,
		logger:     logger.With("component", "summary-pipeline"),
		now:        time.Now,
	}
}

// Tick runs one summary cycle.
//
// The device catalog is refreshed first so telemetry is reconciled against
// the devices that produced it. Summary fetch failures are tolerated up to
// the retry limit; once the limit is reached the pipeline raises a system
// notification and returns ErrDisabled so the poller stops. Any successful
// fetch resets the failure count.
func (p *SummaryPipeline) Tick(ctx context.Context) error {
	p.refreshCatalog(ctx)

	snapshots, err := p.source.FetchSummary(ctx)
	if err != nil {
		p.failures++
		p.logger.Warn("summary fetch failed",
			"error", err,
			"consecutive_failures", p.failures,
			"retry_limit", p.retryLimit,
		)
		if p.failures >= p.retryLimit {
			p.queue.Add(warning.Message{
				Authority: "system",
				Title:     "Telemetry polling disabled",
				Severity:  notify.SeveritySystem,
				Summary:   fmt.Sprintf("Summary fetch failed %d times in a row; polling stopped.", p.failures),
			})
			return ErrDisabled
		}
		return fmt.Errorf("fetching summary: %w", err)
	}
	p.failures = 0

	disconnections := p.cache.Merge(snapshots)
	now := p.now()

	for areaID, area := range snapshots {
		if area == nil || area.Tracker == nil {
			continue
		}
		p.history.Record(areaID, area.Tracker.Environment, now)
		p.mirrorReadings(areaID, area.Tracker, now)
	}

	p.raiseDisconnections(disconnections)
	return nil
}

// refreshCatalog reconciles the sensor catalog against the latest device
// list. Any fetch failure, including a payload without a configs field,
// keeps the current catalog so a bad poll never wipes good data.
func (p *SummaryPipeline) refreshCatalog(ctx context.Context) {
	if p.configs == nil || p.catalog == nil {
		return
	}
	devices, err := p.configs.FetchDeviceConfigs(ctx)
	if err != nil {
		p.logger.Warn("device config fetch failed, keeping current catalog", "error", err)
		return
	}
	p.catalog.UpdateDevices(devices)
}

func (p *SummaryPipeline) mirrorReadings(areaID string, tracker *telemetry.Tracker, now time.Time) {
	if p.mirror == nil {
		return
	}
	for channel, value := range tracker.Environment {
		p.mirror.WriteEnvironmentReading(areaID, string(channel), value, now)
	}
	for key, entry := range tracker.Occupancy {
		p.mirror.WriteOccupancyCount(areaID, string(key), entry.Count, now)
	}
}

// raiseDisconnections enqueues one notification per area with silent
// sensors. The queue's content dedup keeps an ongoing outage from
// accumulating duplicates across ticks.
func (p *SummaryPipeline) raiseDisconnections(disconnections map[string][]sensor.Key) {
	for areaID, keys := range disconnections {
		names := make([]string, len(keys))
		for n, key := range keys {
			names[n] = string(key)
		}
		p.queue.Add(warning.Message{
			Authority: "system",
			Title:     "Sensor disconnected",
			Location:  areaID,
			Severity:  notify.SeveritySystem,
			Summary:   fmt.Sprintf("No longer reporting: %s", strings.Join(names, ", ")),
		})
	}
}
