package warning

import (
	"testing"

	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
)

func areaWithEnv(areaID string, env map[sensor.Key]float64) *telemetry.AreaSnapshot {
	return &telemetry.AreaSnapshot{
		AreaID: areaID,
		Tracker: &telemetry.Tracker{
			Occupancy:   map[sensor.Key]telemetry.CountAndIDs{},
			Environment: env,
		},
	}
}

func TestEvaluateFiresWhenValueWithinBounds(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "temperature watch",
		Conditions: []AreaCondition{
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 0, UpperBound: 40},
			}},
		},
		Messages: []Message{
			{Title: "Hot", Location: "3", Severity: "warning", Summary: "High temp"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"3": areaWithEnv("3", map[sensor.Key]float64{sensor.KeyTemperature: 9}),
	}

	alerts := Evaluate(roomData, rule)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if alerts[0].AreaID != "3" {
		t.Errorf("area = %q, want 3", alerts[0].AreaID)
	}
	if len(alerts[0].Messages) != 1 || alerts[0].Messages[0].Title != "Hot" {
		t.Errorf("messages = %+v, want exactly one titled Hot", alerts[0].Messages)
	}
}

func TestEvaluateDoesNotFireOutsideBounds(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "temperature watch",
		Conditions: []AreaCondition{
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 0, UpperBound: 40},
			}},
		},
		Messages: []Message{
			{Title: "Hot", Location: "3", Severity: "warning", Summary: "High temp"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"3": areaWithEnv("3", map[sensor.Key]float64{sensor.KeyTemperature: 55}),
	}

	if alerts := Evaluate(roomData, rule); len(alerts) != 0 {
		t.Errorf("alerts = %+v, want none for out-of-bounds value", alerts)
	}
}

func TestEvaluateSkipsAbsentAreas(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "offline area",
		Conditions: []AreaCondition{
			{AreaID: "99", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 0, UpperBound: 100},
			}},
		},
		Messages: []Message{
			{Title: "Never", Location: "99", Severity: "warning", Summary: "n/a"},
		},
	}

	if alerts := Evaluate(map[string]*telemetry.AreaSnapshot{}, rule); len(alerts) != 0 {
		t.Errorf("alerts = %+v, want none for absent area", alerts)
	}
}

func TestEvaluateLuggageVariableReadsOccupancyCount(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "luggage pileup",
		Conditions: []AreaCondition{
			{AreaID: "1", Thresholds: []Threshold{
				{Variable: "Luggage", LowerBound: 5, UpperBound: 100},
			}},
		},
		Messages: []Message{
			{Title: "Pileup", Location: "1", Severity: "warning", Summary: "Too many bags"},
		},
	}

	tests := []struct {
		name  string
		count int
		fires bool
	}{
		{"count within bounds", 7, true},
		{"count below bounds", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roomData := map[string]*telemetry.AreaSnapshot{
				"1": {
					AreaID: "1",
					Tracker: &telemetry.Tracker{
						Occupancy: map[sensor.Key]telemetry.CountAndIDs{
							sensor.KeyLuggage: {Count: tt.count},
						},
						Environment: map[sensor.Key]float64{},
					},
				},
			}
			alerts := Evaluate(roomData, rule)
			if fired := len(alerts) > 0; fired != tt.fires {
				t.Errorf("fired = %v, want %v", fired, tt.fires)
			}
		})
	}
}

func TestEvaluateVariableMatchingIsCaseInsensitive(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "capitalised variable",
		Conditions: []AreaCondition{
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "Temperature", LowerBound: 0, UpperBound: 40},
			}},
		},
		Messages: []Message{
			{Title: "Hot", Location: "3", Severity: "warning", Summary: "High temp"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"3": areaWithEnv("3", map[sensor.Key]float64{sensor.KeyTemperature: 9}),
	}

	if alerts := Evaluate(roomData, rule); len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1 for capitalised variable name", len(alerts))
	}
}

func TestEvaluateAggregatesConditionsPerArea(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "duplicated area conditions",
		Conditions: []AreaCondition{
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 0, UpperBound: 40},
			}},
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "sound", LowerBound: 0, UpperBound: 100},
			}},
		},
		Messages: []Message{
			{Title: "Hot", Location: "3", Severity: "warning", Summary: "High temp"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"3": areaWithEnv("3", map[sensor.Key]float64{
			sensor.KeyTemperature: 9,
			sensor.KeySound:       30,
		}),
	}

	alerts := Evaluate(roomData, rule)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want a single entry for the area", len(alerts))
	}
	if got := len(alerts[0].Messages); got != 1 {
		t.Errorf("messages = %d, want 1 (no duplication across conditions)", got)
	}
}

func TestEvaluateSecondConditionCanTriggerArea(t *testing.T) {
	// The first condition for an area misses; a later condition for the same
	// area still triggers it.
	rule := Rule{
		ID:   "r1",
		Name: "late trigger",
		Conditions: []AreaCondition{
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 100, UpperBound: 200},
			}},
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "sound", LowerBound: 0, UpperBound: 100},
			}},
		},
		Messages: []Message{
			{Title: "Noise", Location: "3", Severity: "warning", Summary: "sound in range"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"3": areaWithEnv("3", map[sensor.Key]float64{
			sensor.KeyTemperature: 21,
			sensor.KeySound:       30,
		}),
	}

	if alerts := Evaluate(roomData, rule); len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
}

func TestEvaluateIgnoresVariablesWithoutReadings(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "silent channel",
		Conditions: []AreaCondition{
			{AreaID: "1", Thresholds: []Threshold{
				{Variable: "humidity", LowerBound: 0, UpperBound: 100},
			}},
		},
		Messages: []Message{
			{Title: "Humid", Location: "1", Severity: "warning", Summary: "n/a"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"1": areaWithEnv("1", map[sensor.Key]float64{sensor.KeyTemperature: 21}),
	}

	if alerts := Evaluate(roomData, rule); len(alerts) != 0 {
		t.Errorf("alerts = %+v, want none when the channel has no reading", alerts)
	}
}

func TestEvaluateDeduplicatesIdenticalMessages(t *testing.T) {
	msg := Message{Title: "Hot", Location: "3", Severity: "warning", Summary: "High temp"}
	rule := Rule{
		ID:   "r1",
		Name: "duplicated messages",
		Conditions: []AreaCondition{
			{AreaID: "3", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 0, UpperBound: 40},
			}},
		},
		Messages: []Message{
			msg,
			msg, // exact duplicate collapses
			{Title: "Hot", Location: "3", Severity: "warning", Summary: "Different summary"},
			{Title: "Elsewhere", Location: "4", Severity: "warning", Summary: "wrong area"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"3": areaWithEnv("3", map[sensor.Key]float64{sensor.KeyTemperature: 20}),
	}

	alerts := Evaluate(roomData, rule)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if got := len(alerts[0].Messages); got != 2 {
		t.Errorf("messages = %d, want 2 (duplicate collapsed, other area excluded)", got)
	}
}

func TestEvaluateAnyThresholdTriggersArea(t *testing.T) {
	rule := Rule{
		ID:   "r1",
		Name: "multi threshold",
		Conditions: []AreaCondition{
			{AreaID: "1", Thresholds: []Threshold{
				{Variable: "temperature", LowerBound: 100, UpperBound: 200}, // not met
				{Variable: "sound", LowerBound: 0, UpperBound: 50},          // met
			}},
		},
		Messages: []Message{
			{Title: "Noise", Location: "1", Severity: "info", Summary: "sound in range"},
		},
	}

	roomData := map[string]*telemetry.AreaSnapshot{
		"1": areaWithEnv("1", map[sensor.Key]float64{
			sensor.KeyTemperature: 21,
			sensor.KeySound:       30,
		}),
	}

	alerts := Evaluate(roomData, rule)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1 (any met threshold triggers)", len(alerts))
	}
}
