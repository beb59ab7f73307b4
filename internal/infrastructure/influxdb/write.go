package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteEnvironmentReading writes one environmental channel reading for an
// area.
//
// This is the primary method for mirroring telemetry history. The write is
// non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - areaID: The monitored area the reading belongs to
//   - channel: The environmental channel (e.g. "temperature", "sound")
//   - value: The numeric reading
//   - timestamp: When the reading was observed
//
// Example:
//
//	client.WriteEnvironmentReading("3", "temperature", 21.5, time.Now())
func (c *Client) WriteEnvironmentReading(areaID, channel string, value float64, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"environment",
		map[string]string{
			"area_id": areaID,
			"channel": channel,
		},
		map[string]interface{}{
			"value": value,
		},
		timestamp,
	)

	c.writeAPI.WritePoint(point)
}

// WriteOccupancyCount writes one occupancy sensor count for an area.
//
// Parameters:
//   - areaID: The monitored area
//   - sensorKey: The canonical sensor key (e.g. "user", "luggage")
//   - count: The number of tracked entities
//   - timestamp: When the count was observed
func (c *Client) WriteOccupancyCount(areaID, sensorKey string, count int, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"occupancy",
		map[string]string{
			"area_id": areaID,
			"sensor":  sensorKey,
		},
		map[string]interface{}{
			"count": count,
		},
		timestamp,
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit the helper methods.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
