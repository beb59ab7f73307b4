// Package ingest subscribes to the hardware platform's MQTT topics and
// keeps the reconciled sensor catalog current between configuration polls.
package ingest
