package mqtt

import "fmt"

// Topic prefixes for the hardware platform's MQTT bus.
//
// Device traffic keeps the platform's legacy naming (feeds/hardware-data,
// hardware_config) so existing sensor firmware needs no changes. Topics
// published by Areawatch itself live under the areawatch/ prefix.
const (
	// TopicPrefixData is the base for raw sensor readings.
	TopicPrefixData = "feeds/hardware-data"

	// TopicPrefixConfig is the base for device announcements and
	// configuration updates pushed by the hardware platform.
	TopicPrefixConfig = "hardware_config/hardware_message"

	// TopicPrefixSystem is the base for Areawatch's own system topics.
	TopicPrefixSystem = "areawatch/system"
)

// Topics provides builders for the MQTT topics Areawatch uses.
// Using these helpers keeps topic naming consistent across the codebase.
type Topics struct{}

// HardwareData returns the raw reading topic for one device.
//
// Example: feeds/hardware-data/sensor-17
func (Topics) HardwareData(deviceID string) string {
	return fmt.Sprintf("%s/%s", TopicPrefixData, deviceID)
}

// HardwareConfig returns the announcement topic for one device.
//
// Example: hardware_config/hardware_message/sensor-17
func (Topics) HardwareConfig(deviceID string) string {
	return fmt.Sprintf("%s/%s", TopicPrefixConfig, deviceID)
}

// SystemStatus returns Areawatch's own status topic.
//
// Example: areawatch/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllHardwareData returns a pattern matching every device reading.
//
// Pattern: feeds/hardware-data/#
func (Topics) AllHardwareData() string {
	return TopicPrefixData + "/#"
}

// AllHardwareConfigs returns a pattern matching every device announcement.
//
// Pattern: hardware_config/hardware_message/+
func (Topics) AllHardwareConfigs() string {
	return TopicPrefixConfig + "/+"
}
