package ingest

import (
	"testing"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/infrastructure/mqtt"
	"github.com/areawatch/areawatch-core/internal/sensor"
)

// fakeSubscriber records handlers so tests can inject messages directly.
type fakeSubscriber struct {
	handlers map[string]mqtt.MessageHandler
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{handlers: make(map[string]mqtt.MessageHandler)}
}

func (f *fakeSubscriber) Subscribe(topic string, _ byte, handler mqtt.MessageHandler) error {
	f.handlers[topic] = handler
	return nil
}

func (f *fakeSubscriber) deliver(t *testing.T, pattern, topic string, payload []byte) error {
	t.Helper()
	handler, ok := f.handlers[pattern]
	if !ok {
		t.Fatalf("no subscription for %s", pattern)
	}
	return handler(topic, payload)
}

func setupIngest(t *testing.T) (*fakeSubscriber, *sensor.Catalog) {
	t.Helper()
	sub := newFakeSubscriber()
	catalog := sensor.NewCatalog(sensor.DomainAirport)
	ing := New(sub, catalog, 1, logging.Default())
	if err := ing.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return sub, catalog
}

func TestAnnouncementAddsDevice(t *testing.T) {
	sub, catalog := setupIngest(t)

	err := sub.deliver(t, mqtt.Topics{}.AllHardwareConfigs(),
		"hardware_config/hardware_message/d1",
		[]byte(`{"deviceId": "d1", "readableLabel": "Luggage-01", "deviceKind": 2, "groupId": 7}`))
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}

	devices := catalog.Devices()
	if len(devices) != 1 {
		t.Fatalf("devices = %d, want 1", len(devices))
	}
	if devices[0].RawLabel != "Luggage-01" || devices[0].Kind != sensor.KindOccupancy {
		t.Errorf("device = %+v", devices[0])
	}
}

func TestReannouncementReplacesDevice(t *testing.T) {
	sub, catalog := setupIngest(t)
	pattern := mqtt.Topics{}.AllHardwareConfigs()

	sub.deliver(t, pattern, "hardware_config/hardware_message/d1",
		[]byte(`{"deviceId": "d1", "readableLabel": "Luggage-01", "deviceKind": 2, "groupId": 7}`))
	sub.deliver(t, pattern, "hardware_config/hardware_message/d1",
		[]byte(`{"deviceId": "d1", "readableLabel": "Trolley-01", "deviceKind": 2, "groupId": 8}`))

	devices := catalog.Devices()
	if len(devices) != 1 {
		t.Fatalf("devices = %d, want 1 after re-announcement", len(devices))
	}
	if devices[0].RawLabel != "Trolley-01" || devices[0].GroupID != 8 {
		t.Errorf("device = %+v", devices[0])
	}
}

func TestAnnouncementDeviceIDFallsBackToTopic(t *testing.T) {
	sub, catalog := setupIngest(t)

	err := sub.deliver(t, mqtt.Topics{}.AllHardwareConfigs(),
		"hardware_config/hardware_message/d9",
		[]byte(`{"readableLabel": "Temp Probe", "deviceKind": 1}`))
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}

	devices := catalog.Devices()
	if len(devices) != 1 || devices[0].DeviceID != "d9" {
		t.Errorf("devices = %+v, want device id from topic", devices)
	}
}

func TestAnnouncementRejectsMalformedPayload(t *testing.T) {
	sub, catalog := setupIngest(t)

	err := sub.deliver(t, mqtt.Topics{}.AllHardwareConfigs(),
		"hardware_config/hardware_message/d1", []byte(`{not json`))
	if err == nil {
		t.Error("malformed payload accepted")
	}
	if got := len(catalog.Devices()); got != 0 {
		t.Errorf("devices = %d, want 0 after rejected payload", got)
	}
}

func TestReadingFromUnknownDeviceIsTolerated(t *testing.T) {
	sub, _ := setupIngest(t)

	err := sub.deliver(t, mqtt.Topics{}.AllHardwareData(),
		"feeds/hardware-data/ghost", []byte(`{"temperature": 21}`))
	if err != nil {
		t.Errorf("unknown device reading error = %v, want nil", err)
	}
}

func TestReadingRejectsInvalidJSON(t *testing.T) {
	sub, _ := setupIngest(t)

	err := sub.deliver(t, mqtt.Topics{}.AllHardwareData(),
		"feeds/hardware-data/d1", []byte(`{{{{`))
	if err == nil {
		t.Error("invalid JSON reading accepted")
	}
}
