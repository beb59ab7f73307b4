package sensor

// baseRegistry is the full sensor taxonomy with domain-neutral display
// defaults. Order is significant in two places: canonicalization falls back
// to containment tests against these keys in declaration order, and the
// reconciled catalog is emitted in this order so presentation layers always
// see a stable row layout.
var baseRegistry = []Descriptor{
	{Key: KeyUser, DisplayName: "User", Icon: "user", Kind: KindOccupancy},
	{Key: KeyLuggage, DisplayName: "Luggage", Icon: "suitcase-rolling", Kind: KindOccupancy},
	{Key: KeyGuard, DisplayName: "Guard", Icon: "eye", Kind: KindOccupancy},
	{Key: KeyStaff, DisplayName: "Staff", Icon: "users", Kind: KindOccupancy},
	{Key: KeyIAQ, DisplayName: "IAQ Sensor", Icon: "temperature-low", Kind: KindEnvironmental},
	{Key: KeyHumidity, DisplayName: "Humidity Sensor", Icon: "tint", Kind: KindEnvironmental},
	{Key: KeyLight, DisplayName: "Light Sensor", Icon: "lightbulb", Kind: KindEnvironmental},
	{Key: KeyPressure, DisplayName: "Pressure Sensor", Icon: "arrow-down", Kind: KindEnvironmental},
	{Key: KeySound, DisplayName: "Sound Sensor", Icon: "volume-up", Kind: KindEnvironmental},
	{Key: KeyTemperature, DisplayName: "Temperature Sensor", Icon: "thermometer-half", Kind: KindEnvironmental},
}

// override maps a set of label aliases onto a canonical key with a
// domain-curated display name. Aliases are matched by substring containment
// after singularization and lowercasing.
type override struct {
	Key         Key
	DisplayName string
	Icon        string
	Aliases     []string
}

// domainOverrides holds the per-domain override tables. Tables are iterated
// in declaration order, so alias collisions resolve deterministically:
// the first matching override wins.
var domainOverrides = map[Domain][]override{
	DomainAirport: {
		{Key: KeyUser, DisplayName: "Passenger", Icon: "person-walking-luggage", Aliases: []string{"passenger", "traveller", "user"}},
		{Key: KeyLuggage, DisplayName: "Luggage", Icon: "suitcase-rolling", Aliases: []string{"luggage", "baggage", "suitcase"}},
		{Key: KeyGuard, DisplayName: "Security Guard", Icon: "shield", Aliases: []string{"guard", "security"}},
		{Key: KeyStaff, DisplayName: "Airport Staff", Icon: "id-badge", Aliases: []string{"staff", "crew"}},
	},
	DomainSupermarket: {
		{Key: KeyUser, DisplayName: "Customer", Icon: "cart-shopping", Aliases: []string{"customer", "shopper", "user"}},
		{Key: KeyLuggage, DisplayName: "Trolley", Icon: "cart-flatbed", Aliases: []string{"trolley", "cart", "basket", "luggage"}},
		{Key: KeyGuard, DisplayName: "Security Guard", Icon: "shield", Aliases: []string{"guard", "security"}},
		{Key: KeyStaff, DisplayName: "Store Staff", Icon: "id-badge", Aliases: []string{"staff"}},
	},
}

// Registry returns the base taxonomy with the domain's display overrides
// applied. The returned slice is a fresh copy; callers may modify it.
func Registry(domain Domain) []Descriptor {
	catalog := make([]Descriptor, len(baseRegistry))
	copy(catalog, baseRegistry)

	for i := range catalog {
		if ov, ok := overrideFor(domain, catalog[i].Key); ok {
			catalog[i].DisplayName = ov.DisplayName
			if ov.Icon != "" {
				catalog[i].Icon = ov.Icon
			}
		}
	}
	return catalog
}

// overrideFor looks up the domain override for a key, if any.
func overrideFor(domain Domain, key Key) (override, bool) {
	for _, ov := range domainOverrides[domain] {
		if ov.Key == key {
			return ov, true
		}
	}
	return override{}, false
}

// baseDescriptor returns the domain-neutral descriptor for a key.
func baseDescriptor(key Key) (Descriptor, bool) {
	for _, d := range baseRegistry {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// DefaultDisplayName returns the display name a key carries in the given
// domain before any device labels are considered.
func DefaultDisplayName(domain Domain, key Key) string {
	if ov, ok := overrideFor(domain, key); ok {
		return ov.DisplayName
	}
	if d, ok := baseDescriptor(key); ok {
		return d.DisplayName
	}
	return string(key)
}
