package telemetry

import (
	"encoding/json"
	"fmt"

	"github.com/areawatch/areawatch-core/internal/sensor"
)

// CountAndIDs is the reading for an occupancy-like sensor: how many tracked
// entities are in the area, and which ones.
type CountAndIDs struct {
	Count int      `json:"count"`
	IDs   []string `json:"id"`
}

// Tracker is the telemetry payload for one area: occupancy readings keyed
// by canonical sensor key, plus a nested environment block of numeric
// channel readings.
//
// The wire shape keeps occupancy keys at the top level next to the
// "environment" block, so Tracker carries custom JSON (un)marshalling:
//
//	{"user": {"count": 2, "id": ["8", "9"]}, "environment": {"temperature": 21.5}}
//
// A JSON null for any entry is treated as undefined and dropped during
// decoding; the disconnection detector then sees the key as absent.
type Tracker struct {
	Occupancy   map[sensor.Key]CountAndIDs
	Environment map[sensor.Key]float64
}

// environmentField is the reserved top-level key for the environment block.
const environmentField = "environment"

// UnmarshalJSON decodes the flat wire shape into occupancy and environment
// maps. Unknown top-level keys are assumed to be occupancy readings; values
// that fail to decode as such are skipped rather than failing the payload.
func (t *Tracker) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding tracker: %w", err)
	}

	t.Occupancy = make(map[sensor.Key]CountAndIDs)
	t.Environment = make(map[sensor.Key]float64)

	for key, value := range raw {
		if string(value) == "null" {
			continue
		}
		if key == environmentField {
			var env map[string]*float64
			if err := json.Unmarshal(value, &env); err != nil {
				return fmt.Errorf("decoding environment block: %w", err)
			}
			for channel, reading := range env {
				if reading == nil {
					continue
				}
				t.Environment[sensor.Key(channel)] = *reading
			}
			continue
		}

		var entry CountAndIDs
		if err := json.Unmarshal(value, &entry); err != nil {
			// Not an occupancy entry; ignore rather than reject the area.
			continue
		}
		t.Occupancy[sensor.Key(key)] = entry
	}
	return nil
}

// MarshalJSON re-emits the flat wire shape.
func (t Tracker) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(t.Occupancy)+1)
	for key, entry := range t.Occupancy {
		flat[string(key)] = entry
	}
	env := make(map[string]float64, len(t.Environment))
	for channel, reading := range t.Environment {
		env[string(channel)] = reading
	}
	flat[environmentField] = env
	return json.Marshal(flat)
}

// DeepCopy creates an independent copy of the tracker.
func (t *Tracker) DeepCopy() *Tracker {
	if t == nil {
		return nil
	}
	cpy := &Tracker{
		Occupancy:   make(map[sensor.Key]CountAndIDs, len(t.Occupancy)),
		Environment: make(map[sensor.Key]float64, len(t.Environment)),
	}
	for key, entry := range t.Occupancy {
		entry.IDs = append([]string(nil), entry.IDs...)
		cpy.Occupancy[key] = entry
	}
	for key, reading := range t.Environment {
		cpy.Environment[key] = reading
	}
	return cpy
}

// BoxGeometry is the presentation overlay rectangle for an area. It is
// owned by the external preset editor; this service carries it opaquely so
// merges never lose it.
type BoxGeometry struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Colour string  `json:"colour"`
}

// AreaSnapshot is the cached state of one monitored area.
type AreaSnapshot struct {
	AreaID  string       `json:"area_id"`
	Label   string       `json:"label,omitempty"`
	Box     *BoxGeometry `json:"box,omitempty"`
	Tracker *Tracker     `json:"tracker,omitempty"`
}

// DeepCopy creates an independent copy of the snapshot.
func (s *AreaSnapshot) DeepCopy() *AreaSnapshot {
	if s == nil {
		return nil
	}
	cpy := *s
	if s.Box != nil {
		box := *s.Box
		cpy.Box = &box
	}
	cpy.Tracker = s.Tracker.DeepCopy()
	return &cpy
}
