package sensor

import "testing"

// findKey returns the descriptor for a key, failing the test if absent.
func findKey(t *testing.T, catalog []Descriptor, key Key) Descriptor {
	t.Helper()
	for _, d := range catalog {
		if d.Key == key {
			return d
		}
	}
	t.Fatalf("catalog missing key %q", key)
	return Descriptor{}
}

func TestRegistryAppliesDomainOverrides(t *testing.T) {
	airport := Registry(DomainAirport)
	if got := findKey(t, airport, KeyUser).DisplayName; got != "Passenger" {
		t.Errorf("airport user display = %q, want Passenger", got)
	}
	if got := findKey(t, airport, KeyTemperature).DisplayName; got != "Temperature Sensor" {
		t.Errorf("airport temperature display = %q, want base default", got)
	}

	market := Registry(DomainSupermarket)
	if got := findKey(t, market, KeyLuggage).DisplayName; got != "Trolley" {
		t.Errorf("supermarket luggage display = %q, want Trolley", got)
	}
}

func TestReconcileGroupsDevices(t *testing.T) {
	configs := []DeviceConfig{
		{DeviceID: "pico-1", RawLabel: "Luggage-01", Kind: KindOccupancy},
		{DeviceID: "pico-2", RawLabel: "Luggage-02", Kind: KindOccupancy},
	}

	catalog, perDevice := Reconcile(configs, DomainAirport)

	if got := findKey(t, catalog, KeyLuggage).DisplayName; got != "Luggage (2)" {
		t.Errorf("grouped luggage display = %q, want \"Luggage (2)\"", got)
	}
	if len(perDevice) != 2 {
		t.Fatalf("perDevice length = %d, want 2", len(perDevice))
	}
	if perDevice[0].DisplayName != "Luggage-01" || perDevice[1].DisplayName != "Luggage-02" {
		t.Errorf("perDevice labels = %q, %q, want raw labels", perDevice[0].DisplayName, perDevice[1].DisplayName)
	}
	if perDevice[0].Key != KeyLuggage {
		t.Errorf("perDevice key = %q, want luggage", perDevice[0].Key)
	}
}

func TestReconcileSkipsUnassignedDevices(t *testing.T) {
	configs := []DeviceConfig{
		{DeviceID: "pico-1", RawLabel: "Fresh Pico", Kind: KindUnassigned},
		{DeviceID: "pico-2", RawLabel: "Temperature Hall A", Kind: KindEnvironmental},
	}

	_, perDevice := Reconcile(configs, DomainAirport)

	if len(perDevice) != 1 {
		t.Fatalf("perDevice length = %d, want 1 (unassigned skipped)", len(perDevice))
	}
	if perDevice[0].DisplayName != "Temperature Hall A" {
		t.Errorf("perDevice[0] = %q", perDevice[0].DisplayName)
	}
}

func TestReconcileSingleDeviceKeepsRawLabel(t *testing.T) {
	configs := []DeviceConfig{
		{DeviceID: "pico-1", RawLabel: "Gate 12 Baggage", Kind: KindOccupancy},
	}

	catalog, _ := Reconcile(configs, DomainAirport)

	if got := findKey(t, catalog, KeyLuggage).DisplayName; got != "Gate 12 Baggage" {
		t.Errorf("single-device display = %q, want raw label", got)
	}
}

func TestReconcileGenericLabelDoesNotEraseDomainName(t *testing.T) {
	// A device labelled with the generic registry default ("User") must not
	// displace the airport's curated "Passenger".
	configs := []DeviceConfig{
		{DeviceID: "pico-1", RawLabel: "User", Kind: KindOccupancy},
	}

	catalog, _ := Reconcile(configs, DomainAirport)

	if got := findKey(t, catalog, KeyUser).DisplayName; got != "Passenger" {
		t.Errorf("user display = %q, want domain override Passenger", got)
	}
}

func TestReconcileIdleKeysKeepDefaults(t *testing.T) {
	catalog, perDevice := Reconcile(nil, DomainAirport)

	if len(catalog) != len(baseRegistry) {
		t.Fatalf("catalog length = %d, want full taxonomy %d", len(catalog), len(baseRegistry))
	}
	if len(perDevice) != 0 {
		t.Errorf("perDevice length = %d, want 0", len(perDevice))
	}
	if got := findKey(t, catalog, KeySound).DisplayName; got != "Sound Sensor" {
		t.Errorf("idle sound display = %q, want registry default", got)
	}
}

func TestReconcileAdHocKeysSurface(t *testing.T) {
	configs := []DeviceConfig{
		{DeviceID: "pico-9", RawLabel: "Forklift", Kind: KindOccupancy},
	}

	catalog, _ := Reconcile(configs, DomainAirport)

	d := findKey(t, catalog, Key("forklift"))
	if d.DisplayName != "Forklift" {
		t.Errorf("ad-hoc display = %q, want raw label", d.DisplayName)
	}
	if d.Kind != KindOccupancy {
		t.Errorf("ad-hoc kind = %v, want occupancy", d.Kind)
	}
}

func TestCatalogRetainsLastGoodValue(t *testing.T) {
	cat := NewCatalog(DomainAirport)

	configs := []DeviceConfig{
		{DeviceID: "pico-1", RawLabel: "Luggage-01", Kind: KindOccupancy},
	}
	cat.UpdateDevices(configs)

	before := cat.Descriptors()
	if got := findKey(t, before, KeyLuggage).DisplayName; got != "Luggage-01" {
		t.Fatalf("catalog display = %q", got)
	}

	// A malformed payload never reaches UpdateDevices; readers keep seeing
	// the last good reconciliation.
	after := cat.Descriptors()
	if len(after) != len(before) {
		t.Errorf("catalog changed without an update")
	}
}
