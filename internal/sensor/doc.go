// Package sensor defines the canonical sensor taxonomy and the
// reconciliation of field device labels onto it.
//
// Field devices arrive with arbitrary, vendor- and operator-chosen labels
// ("Luggage-03", "Passengers hall B"). Canonicalize maps each label onto a
// stable canonical Key using the active domain's alias tables; Reconcile
// groups the resulting devices and merges them over the registry defaults
// to produce the live catalog a presentation layer renders.
//
// The canonical keys are the join vocabulary for the whole system: the
// telemetry cache and the warning evaluator address sensors exclusively by
// Key, never by raw device label.
package sensor
