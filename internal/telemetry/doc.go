// Package telemetry holds the live area cache and the disconnection
// detector.
//
// The summary poll merges each authoritative payload into the Cache;
// DetectDisconnections diffs the previous generation against the incoming
// payload to find sensors that went silent. The diff is deliberately
// two-generation only: a sensor that reappears in the next payload is
// immediately considered connected again, with no lingering state.
//
// History keeps the short rolling window of environment readings used for
// charting; long-term retention belongs to InfluxDB.
package telemetry
