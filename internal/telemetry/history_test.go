package telemetry

import (
	"testing"
	"time"

	"github.com/areawatch/areawatch-core/internal/sensor"
)

func TestHistoryRecordsChartedChannels(t *testing.T) {
	history := NewHistory()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	history.Record("1", map[sensor.Key]float64{
		sensor.KeyTemperature: 21.5,
		sensor.KeySound:       40,
		sensor.KeyHumidity:    55, // not charted
	}, now)

	window := history.Window("1")
	if len(window) != 1 {
		t.Fatalf("window length = %d, want 1", len(window))
	}
	sample := window[0]
	if sample.Temperature == nil || *sample.Temperature != 21.5 {
		t.Errorf("temperature = %v, want 21.5", sample.Temperature)
	}
	if sample.Sound == nil || *sample.Sound != 40 {
		t.Errorf("sound = %v, want 40", sample.Sound)
	}
	if sample.Light != nil {
		t.Errorf("light = %v, want nil", sample.Light)
	}
	if !sample.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", sample.Timestamp, now)
	}
}

func TestHistorySkipsEmptyEnvironment(t *testing.T) {
	history := NewHistory()
	history.Record("1", nil, time.Now())
	history.Record("1", map[sensor.Key]float64{}, time.Now())

	if got := history.Window("1"); len(got) != 0 {
		t.Errorf("window length = %d, want 0", len(got))
	}
}

func TestHistoryTrimsToWindow(t *testing.T) {
	history := NewHistory()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < historyWindow+5; i++ {
		history.Record("1", map[sensor.Key]float64{
			sensor.KeyTemperature: float64(i),
		}, base.Add(time.Duration(i)*time.Second))
	}

	window := history.Window("1")
	if len(window) != historyWindow {
		t.Fatalf("window length = %d, want %d", len(window), historyWindow)
	}
	if got := *window[0].Temperature; got != 5 {
		t.Errorf("oldest retained sample = %v, want 5", got)
	}
	if got := *window[len(window)-1].Temperature; got != float64(historyWindow+4) {
		t.Errorf("newest sample = %v, want %d", got, historyWindow+4)
	}
}
