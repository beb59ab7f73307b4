package sensor

import "strings"

// Singularize strips a plural suffix from a label.
//
// The rules are deliberately simple; device labels are short English nouns
// and the goal is stable grouping, not linguistic correctness:
//
//   - "-ies" becomes "-y" (batteries -> battery)
//   - "-es" is stripped only after the digraphs "ch" and "sh" (benches ->
//     bench), so nouns that merely end in "e" keep it (luggages -> luggage)
//   - "-s" is stripped, unless the label ends in "ss" (so "press" survives)
func Singularize(label string) string {
	lower := strings.ToLower(label)
	switch {
	case strings.HasSuffix(lower, "ies"):
		return label[:len(label)-3] + "y"
	case strings.HasSuffix(lower, "ches") || strings.HasSuffix(lower, "shes"):
		return label[:len(label)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return label[:len(label)-1]
	default:
		return label
	}
}

// Canonicalize maps a raw device label onto a canonical sensor Key.
//
// Matching is case-insensitive and pluralization-insensitive, and works by
// substring containment so decorated labels ("Luggage-03", "hall passenger
// counter") still resolve. The search order is:
//
//  1. The domain's override table, in declaration order: the singularized,
//     lowercased label either contains an alias (itself singularized and
//     lowercased) or exactly equals the canonical key.
//  2. The base registry keys, in declaration order, by containment.
//  3. No match: the singularized, lowercased label is returned verbatim as
//     an ad-hoc key, so unknown device types surface instead of crashing.
//
// An empty label canonicalizes to the empty Key; callers must treat that
// as unmapped.
func Canonicalize(rawLabel string, domain Domain) Key {
	if rawLabel == "" {
		return ""
	}

	label := strings.ToLower(Singularize(rawLabel))

	for _, ov := range domainOverrides[domain] {
		if label == string(ov.Key) {
			return ov.Key
		}
		for _, alias := range ov.Aliases {
			if strings.Contains(label, strings.ToLower(Singularize(alias))) {
				return ov.Key
			}
		}
	}

	for _, d := range baseRegistry {
		if strings.Contains(label, string(d.Key)) {
			return d.Key
		}
	}

	return Key(label)
}
