// Package poll owns the periodic pipelines that drive the engine: the
// summary poll (device catalog refresh, telemetry merge, disconnection
// detection, history), the warnings poll (rule evaluation), and the
// message poll.
//
// Each pipeline is a plain tick function run by a Poller, so a tick is
// testable as a pure call from fetched payload to state change, without
// real timers. Errors never escape a tick; they are logged at the boundary,
// except for ErrDisabled which stops the poller deliberately.
package poll
