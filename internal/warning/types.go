package warning

import "time"

// Threshold is one bounded check on a tracker variable. Variable names an
// environmental channel ("temperature", "sound", ...) or the literal token
// "Luggage", which reads the luggage occupancy count instead.
type Threshold struct {
	Variable   string  `json:"variable"`
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
}

// AreaCondition binds a list of thresholds to one monitored area.
type AreaCondition struct {
	AreaID     string      `json:"areaId"`
	Thresholds []Threshold `json:"conditions"`
}

// Message is the alert payload attached to a rule. Location ties a message
// to the area whose trigger should surface it.
type Message struct {
	Authority string `json:"authority"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Severity  string `json:"severity"`
	Summary   string `json:"summary"`
}

// Rule is an operator-authored warning rule: per-area threshold conditions
// plus the messages to raise when an area triggers.
type Rule struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Conditions []AreaCondition `json:"conditions"`
	Messages   []Message       `json:"messages"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AreaAlerts is the evaluation result for one triggered area.
type AreaAlerts struct {
	AreaID   string    `json:"area_id"`
	Messages []Message `json:"messages"`
}
