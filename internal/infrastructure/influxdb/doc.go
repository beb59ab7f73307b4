// Package influxdb provides InfluxDB connectivity for Areawatch Core.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, non-blocking batched writes, and health monitoring.
//
// # Purpose
//
// The in-process environment history keeps only a short rolling window per
// area; this package mirrors every summary poll's environment and occupancy
// readings to InfluxDB for long-term retention and dashboarding. The mirror
// is optional and config-gated: when influxdb.enabled is false the rest of
// the system runs unchanged.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteEnvironmentReading("3", "temperature", 21.5, time.Now())
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
//
// # Error Handling
//
// Write operations are non-blocking; batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned
// directly.
package influxdb
