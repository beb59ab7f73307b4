package telemetry

import (
	"sync"
	"time"

	"github.com/areawatch/areawatch-core/internal/sensor"
)

// historyWindow is the number of environment samples retained per area.
const historyWindow = 20

// EnvSample is one timestamped reading of the charted environment channels.
// Channels absent from the payload stay nil.
type EnvSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature,omitempty"`
	Sound       *float64  `json:"sound,omitempty"`
	Light       *float64  `json:"light,omitempty"`
}

// History keeps a rolling window of recent environment readings per area,
// for sparkline-style charting by the presentation layer. Older samples
// fall off the front once the window is full.
//
// Thread Safety: all methods are safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	samples map[string][]EnvSample
}

// NewHistory creates an empty environment history.
func NewHistory() *History {
	return &History{
		samples: make(map[string][]EnvSample),
	}
}

// Record appends a sample for the area. Empty environment blocks are
// ignored; an area with no environmental sensors accumulates no history.
func (h *History) Record(areaID string, env map[sensor.Key]float64, now time.Time) {
	if len(env) == 0 {
		return
	}

	sample := EnvSample{Timestamp: now}
	if v, ok := env[sensor.KeyTemperature]; ok {
		sample.Temperature = &v
	}
	if v, ok := env[sensor.KeySound]; ok {
		sample.Sound = &v
	}
	if v, ok := env[sensor.KeyLight]; ok {
		sample.Light = &v
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	window := append(h.samples[areaID], sample)
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}
	h.samples[areaID] = window
}

// Window returns a copy of the area's sample window, oldest first.
func (h *History) Window(areaID string) []EnvSample {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]EnvSample(nil), h.samples[areaID]...)
}
