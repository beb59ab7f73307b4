package sensor

// Key is the canonical, stable identifier for a sensor kind.
//
// Keys are the join vocabulary between the registry, the telemetry cache,
// and warning rules. They are never renamed once created. Device labels from
// the field canonicalize onto these keys; an unrecognised label becomes an
// ad-hoc Key holding the singularized label verbatim.
type Key string

// The fixed canonical vocabulary. Occupancy keys first, then environmental
// channels. Declaration order matters: canonicalization falls back to
// containment tests against these keys in this order.
const (
	KeyUser        Key = "user"
	KeyLuggage     Key = "luggage"
	KeyGuard       Key = "guard"
	KeyStaff       Key = "staff"
	KeyIAQ         Key = "iaq"
	KeyHumidity    Key = "humidity"
	KeyLight       Key = "light"
	KeyPressure    Key = "pressure"
	KeySound       Key = "sound"
	KeyTemperature Key = "temperature"
)

// Kind classifies what a sensor measures.
//
// The numeric values match the upstream hardware platform's device kinds:
// 0 = unassigned (commissioned but not yet configured), 1 = environmental
// sampler, 2 = occupancy tracker.
type Kind int

const (
	KindUnassigned    Kind = 0
	KindEnvironmental Kind = 1
	KindOccupancy     Kind = 2
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEnvironmental:
		return "environmental"
	case KindOccupancy:
		return "occupancy"
	default:
		return "unassigned"
	}
}

// Domain is the operational context the system is deployed in.
// It selects the display-name overrides and icons used by the reconciler.
// Domain is decided once at startup (remote home config, falling back to
// site config) and read-only thereafter.
type Domain string

const (
	DomainAirport     Domain = "airport"
	DomainSupermarket Domain = "supermarket"
)

// Descriptor describes one sensor kind for presentation purposes.
//
// Icon is a lookup token for the presentation layer (e.g. "suitcase-rolling");
// this service never renders it.
type Descriptor struct {
	Key         Key    `json:"key"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	Kind        Kind   `json:"kind"`
}

// DeviceConfig is one field device as reported by the hardware platform.
// Instances are immutable once received. Many devices may canonicalize to
// the same Key.
type DeviceConfig struct {
	DeviceID string `json:"device_id"`
	RawLabel string `json:"raw_label"`
	Kind     Kind   `json:"kind"`
	GroupID  int    `json:"group_id"`
}
