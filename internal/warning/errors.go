package warning

import "errors"

// Domain errors for the warning package, checked with errors.Is().
var (
	// ErrRuleNotFound is returned when a rule ID does not exist.
	ErrRuleNotFound = errors.New("warning: rule not found")

	// ErrRuleExists is returned when creating a rule with an ID that already exists.
	ErrRuleExists = errors.New("warning: rule already exists")

	// ErrInvalidName is returned when a rule name is empty.
	ErrInvalidName = errors.New("warning: invalid name")
)
