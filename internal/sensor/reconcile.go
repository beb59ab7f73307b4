package sensor

import (
	"fmt"
	"strings"
)

// Reconcile folds a device configuration list into the live sensor catalog.
//
// Devices still unassigned (Kind 0) are skipped. The remaining devices are
// canonicalized and grouped by Key, then merged over the domain registry:
//
//   - a group of several devices is labelled "<domain default> (<count>)"
//   - a single device keeps its own raw label, which operators recognise —
//     unless that label is just the generic registry default, in which case
//     the domain's curated name wins
//   - keys with no devices keep the registry default untouched, so the
//     catalog is always the full, stable taxonomy including idle rows
//
// Labels that canonicalize to a key outside the registry are appended after
// the taxonomy as ad-hoc descriptors in first-seen order.
//
// The second return value is the per-device view: one descriptor per
// non-skipped device, in input order, carrying the device's raw label.
func Reconcile(configs []DeviceConfig, domain Domain) ([]Descriptor, []Descriptor) {
	catalog := Registry(domain)

	// Group devices by canonical key. Empty keys (blank labels) stay
	// unmapped and never reach the catalog.
	groups := make(map[Key][]DeviceConfig)
	var keyOrder []Key
	for _, dc := range configs {
		if dc.Kind == KindUnassigned {
			continue
		}
		key := Canonicalize(dc.RawLabel, domain)
		if key == "" {
			continue
		}
		if _, seen := groups[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		groups[key] = append(groups[key], dc)
	}

	known := make(map[Key]bool, len(catalog))
	for i := range catalog {
		key := catalog[i].Key
		known[key] = true
		catalog[i].DisplayName = mergedDisplayName(domain, key, groups[key])
	}

	// Ad-hoc keys: unknown device types surface without domain styling.
	for _, key := range keyOrder {
		if known[key] {
			continue
		}
		devs := groups[key]
		d := Descriptor{
			Key:         key,
			DisplayName: devs[0].RawLabel,
			Kind:        devs[0].Kind,
		}
		if len(devs) > 1 {
			d.DisplayName = fmt.Sprintf("%s (%d)", string(key), len(devs))
		}
		catalog = append(catalog, d)
	}

	// Per-device view: the catalog descriptor for the device's key, but
	// labelled with the device's own raw label.
	byKey := make(map[Key]Descriptor, len(catalog))
	for _, d := range catalog {
		byKey[d.Key] = d
	}
	var perDevice []Descriptor
	for _, dc := range configs {
		if dc.Kind == KindUnassigned {
			continue
		}
		key := Canonicalize(dc.RawLabel, domain)
		if key == "" {
			continue
		}
		d := byKey[key]
		d.DisplayName = dc.RawLabel
		perDevice = append(perDevice, d)
	}

	return catalog, perDevice
}

// mergedDisplayName decides the catalog display name for a registry key
// given the devices grouped under it. Domain overrides are consulted both
// for the grouped form and for the single-device form, so a device label
// matching the generic registry default never erases a domain's curated
// label.
func mergedDisplayName(domain Domain, key Key, devs []DeviceConfig) string {
	switch {
	case len(devs) > 1:
		return fmt.Sprintf("%s (%d)", DefaultDisplayName(domain, key), len(devs))
	case len(devs) == 1:
		if base, ok := baseDescriptor(key); ok && strings.EqualFold(devs[0].RawLabel, base.DisplayName) {
			return DefaultDisplayName(domain, key)
		}
		return devs[0].RawLabel
	default:
		return DefaultDisplayName(domain, key)
	}
}
