package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/infrastructure/mqtt"
	"github.com/areawatch/areawatch-core/internal/sensor"
)

// Subscriber is the slice of the MQTT client the ingest needs. Narrowing to
// an interface keeps the ingest testable without a broker.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
}

// announcement is the hardware platform's device announcement payload,
// published on hardware_config/hardware_message/{deviceId}.
type announcement struct {
	DeviceID      string `json:"deviceId"`
	ReadableLabel string `json:"readableLabel"`
	DeviceKind    int    `json:"deviceKind"`
	GroupID       int    `json:"groupId"`
}

// Ingest keeps the reconciled sensor catalog live between config polls by
// listening to the hardware platform's MQTT announcements. Raw readings on
// the data feed are only sanity-checked here; authoritative telemetry comes
// from the summary poll.
type Ingest struct {
	subscriber Subscriber
	catalog    *sensor.Catalog
	qos        byte
	logger     *logging.Logger
}

// New creates an ingest bound to a catalog.
func New(subscriber Subscriber, catalog *sensor.Catalog, qos byte, logger *logging.Logger) *Ingest {
	return &Ingest{
		subscriber: subscriber,
		catalog:    catalog,
		qos:        qos,
		logger:     logger.With("component", "ingest"),
	}
}

// Start subscribes to the hardware topics. Subscriptions persist until the
// underlying MQTT client is closed.
func (i *Ingest) Start() error {
	topics := mqtt.Topics{}

	if err := i.subscriber.Subscribe(topics.AllHardwareConfigs(), i.qos, i.handleAnnouncement); err != nil {
		return fmt.Errorf("subscribing to device announcements: %w", err)
	}
	if err := i.subscriber.Subscribe(topics.AllHardwareData(), i.qos, i.handleReading); err != nil {
		return fmt.Errorf("subscribing to device readings: %w", err)
	}

	i.logger.Info("hardware ingest started")
	return nil
}

// handleAnnouncement folds a device announcement into the catalog's device
// list. Re-announcements replace the device's previous entry; the catalog
// reconciles the updated list immediately.
func (i *Ingest) handleAnnouncement(topic string, payload []byte) error {
	var ann announcement
	if err := json.Unmarshal(payload, &ann); err != nil {
		return fmt.Errorf("decoding announcement on %s: %w", topic, err)
	}
	if ann.DeviceID == "" {
		ann.DeviceID = deviceIDFromTopic(topic)
	}
	if ann.DeviceID == "" {
		return fmt.Errorf("announcement on %s carries no device id", topic)
	}

	devices := i.catalog.Devices()
	updated := false
	for n, device := range devices {
		if device.DeviceID == ann.DeviceID {
			devices[n] = deviceFromAnnouncement(ann)
			updated = true
			break
		}
	}
	if !updated {
		devices = append(devices, deviceFromAnnouncement(ann))
	}

	i.catalog.UpdateDevices(devices)
	i.logger.Debug("device announcement applied",
		"device_id", ann.DeviceID,
		"label", ann.ReadableLabel,
		"kind", sensor.Kind(ann.DeviceKind).String(),
	)
	return nil
}

// handleReading validates raw readings as they stream past. Readings from
// devices the catalog has never seen are logged so misconfigured hardware
// surfaces quickly.
func (i *Ingest) handleReading(topic string, payload []byte) error {
	deviceID := deviceIDFromTopic(topic)
	if deviceID == "" {
		return fmt.Errorf("reading on %s carries no device id", topic)
	}

	if !json.Valid(payload) {
		return fmt.Errorf("reading from %s is not valid JSON", deviceID)
	}

	for _, device := range i.catalog.Devices() {
		if device.DeviceID == deviceID {
			return nil
		}
	}

	i.logger.Warn("reading from unknown device", "device_id", deviceID, "topic", topic)
	return nil
}

func deviceFromAnnouncement(ann announcement) sensor.DeviceConfig {
	return sensor.DeviceConfig{
		DeviceID: ann.DeviceID,
		RawLabel: ann.ReadableLabel,
		Kind:     sensor.Kind(ann.DeviceKind),
		GroupID:  ann.GroupID,
	}
}

// deviceIDFromTopic extracts the trailing segment of a hardware topic.
func deviceIDFromTopic(topic string) string {
	idx := strings.LastIndex(topic, "/")
	if idx < 0 || idx == len(topic)-1 {
		return ""
	}
	return topic[idx+1:]
}
