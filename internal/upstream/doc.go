// Package upstream is the HTTP client layer for the external data
// platform: site content, device configurations, telemetry summaries,
// operator messages, session validation, and the warning rule passthrough.
//
// Each platform service gets its own client bound to its base URL. Error
// handling is uniform: transport errors wrap the cause, non-2xx answers
// wrap ErrStatus, and callers decide whether a failure is fatal or
// tolerable for their poll cycle.
package upstream
