package upstream

import "errors"

// Domain errors for the upstream package, checked with errors.Is().
var (
	// ErrStatus is returned when an upstream service answers with a
	// non-2xx status code.
	ErrStatus = errors.New("upstream: unexpected status")

	// ErrNoDeviceConfigs is returned when the hardware service answers
	// without a configs field; callers keep their last good catalog.
	ErrNoDeviceConfigs = errors.New("upstream: no device configs in payload")

	// ErrSessionInvalid is returned when the accounts service rejects a
	// session token.
	ErrSessionInvalid = errors.New("upstream: session invalid")
)
