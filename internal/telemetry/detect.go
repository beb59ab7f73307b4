package telemetry

import (
	"sort"

	"github.com/areawatch/areawatch-core/internal/sensor"
)

// DetectDisconnections computes, per area, the sensors that were reporting
// in the previous snapshot but are silent in the latest authoritative
// payload.
//
// The comparison is a strict two-generation diff: previous cache entry
// against the newest full payload, never against the merged cache. A key
// that disappears shows up in the set for exactly as long as the payloads
// omit it; the moment a newer payload reintroduces the key it drops out
// again. Environmental channels are checked individually, so one channel
// can go silent while its siblings stay live; occupancy keys are checked at
// the top level.
//
// Both arguments are read-only; the function never mutates its inputs.
func DetectDisconnections(previous, latest map[string]*AreaSnapshot) map[string][]sensor.Key {
	disconnections := make(map[string][]sensor.Key)

	for areaID, prev := range previous {
		if prev == nil || prev.Tracker == nil {
			continue
		}

		var baseline *Tracker
		if area := latest[areaID]; area != nil {
			baseline = area.Tracker
		}

		var gone []sensor.Key
		for key := range prev.Tracker.Occupancy {
			if baseline == nil {
				gone = append(gone, key)
				continue
			}
			if _, ok := baseline.Occupancy[key]; !ok {
				gone = append(gone, key)
			}
		}
		for channel := range prev.Tracker.Environment {
			if baseline == nil {
				gone = append(gone, channel)
				continue
			}
			if _, ok := baseline.Environment[channel]; !ok {
				gone = append(gone, channel)
			}
		}

		if len(gone) > 0 {
			sort.Slice(gone, func(i, j int) bool { return gone[i] < gone[j] })
			disconnections[areaID] = gone
		}
	}

	return disconnections
}
