package mqtt

import "testing"

func TestTopicBuilders(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"hardware data", topics.HardwareData("sensor-17"), "feeds/hardware-data/sensor-17"},
		{"hardware config", topics.HardwareConfig("sensor-17"), "hardware_config/hardware_message/sensor-17"},
		{"system status", topics.SystemStatus(), "areawatch/system/status"},
		{"all hardware data", topics.AllHardwareData(), "feeds/hardware-data/#"},
		{"all hardware configs", topics.AllHardwareConfigs(), "hardware_config/hardware_message/+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestPublishValidation(t *testing.T) {
	// A zero-value client is never connected, so validation paths are
	// exercised without a broker.
	client := &Client{}

	if err := client.Publish("", []byte("x"), 1, false); err != ErrInvalidTopic {
		t.Errorf("empty topic error = %v, want ErrInvalidTopic", err)
	}
	if err := client.Publish("t", []byte("x"), 3, false); err != ErrInvalidQoS {
		t.Errorf("bad qos error = %v, want ErrInvalidQoS", err)
	}
}

func TestCloseNilClient(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on unconnected client = %v, want nil", err)
	}
}
