package warning

import (
	"strings"

	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
)

// luggageVariable is the one threshold variable that reads an occupancy
// count rather than an environmental channel.
const luggageVariable = "Luggage"

// Evaluate checks one rule against the latest area snapshots and returns the
// alerts it raises, in rule condition order.
//
// An area is triggered when ANY of its thresholds is met. A threshold is
// met when the observed value lies WITHIN [LowerBound, UpperBound], not
// outside it; operators compose bounds assuming that polarity.
//
// Areas referenced by the rule but absent from roomData are skipped without
// error; rules outlive areas that are temporarily offline. Conditions are
// aggregated per area, so a rule naming the same area twice still raises at
// most one AreaAlerts entry for it. A triggered area collects every rule
// message whose Location equals its area ID, deduplicated by full field
// content.
func Evaluate(roomData map[string]*telemetry.AreaSnapshot, rule Rule) []AreaAlerts {
	triggered := make(map[string]struct{})
	var order []string

	for _, condition := range rule.Conditions {
		if _, done := triggered[condition.AreaID]; done {
			continue
		}
		area, ok := roomData[condition.AreaID]
		if !ok || area == nil || area.Tracker == nil {
			continue
		}
		if !anyThresholdMet(area.Tracker, condition.Thresholds) {
			continue
		}
		triggered[condition.AreaID] = struct{}{}
		order = append(order, condition.AreaID)
	}

	var alerts []AreaAlerts
	for _, areaID := range order {
		messages := collectMessages(rule.Messages, areaID)
		if len(messages) == 0 {
			continue
		}
		alerts = append(alerts, AreaAlerts{
			AreaID:   areaID,
			Messages: messages,
		})
	}

	return alerts
}

// anyThresholdMet reports whether at least one threshold in the list reads a
// value within its bounds. Environment lookups lowercase the operator's
// variable name, since canonical keys are lowercase. Variables with no
// reading in the tracker never meet their threshold.
func anyThresholdMet(tracker *telemetry.Tracker, thresholds []Threshold) bool {
	for _, th := range thresholds {
		var value float64
		if th.Variable == luggageVariable {
			entry, ok := tracker.Occupancy[sensor.KeyLuggage]
			if !ok {
				continue
			}
			value = float64(entry.Count)
		} else {
			reading, ok := tracker.Environment[sensor.Key(strings.ToLower(th.Variable))]
			if !ok {
				continue
			}
			value = reading
		}

		if th.LowerBound <= value && value <= th.UpperBound {
			return true
		}
	}
	return false
}

// collectMessages gathers the rule messages addressed to the area,
// deduplicated by full field content so repeated evaluation of the same rule
// never accumulates duplicates.
func collectMessages(messages []Message, areaID string) []Message {
	var collected []Message
	seen := make(map[Message]struct{})
	for _, msg := range messages {
		if msg.Location != areaID {
			continue
		}
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		collected = append(collected, msg)
	}
	return collected
}
