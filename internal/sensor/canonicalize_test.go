package sensor

import "testing"

func TestSingularize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"batteries", "battery"},
		{"Luggages", "Luggage"}, // trailing "e" survives, only the "s" goes
		{"passengers", "passenger"},
		{"benches", "bench"},
		{"dishes", "dish"},
		{"heroes", "heroe"}, // not a ch/sh stem, -s still applies
		{"buses", "buse"},   // not a ch/sh stem, -s still applies
		{"boxes", "boxe"},   // not a ch/sh stem, -s still applies
		{"press", "press"},
		{"glass", "glass"},
		{"guard", "guard"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Singularize(tt.input); got != tt.want {
				t.Errorf("Singularize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeAirport(t *testing.T) {
	tests := []struct {
		label string
		want  Key
	}{
		// Pluralization- and case-insensitive alias matching.
		{"Passengers", KeyUser},
		{"passenger", KeyUser},
		{"USER", KeyUser},
		{"Travellers", KeyUser},
		// Containment survives decorated labels.
		{"luggage-03", KeyLuggage},
		{"Baggage Belt", KeyLuggage},
		{"hall security cam", KeyGuard},
		{"Crew", KeyStaff},
		// Base registry fallback for keys with no airport override.
		{"Temperature", KeyTemperature},
		{"temperature-probe-2", KeyTemperature},
		{"Humidity Sensors", KeyHumidity},
		// Unknown labels surface as ad-hoc keys.
		{"Forklift", Key("forklift")},
		{"Forklifts", Key("forklift")},
		// Empty label means unmapped.
		{"", Key("")},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Canonicalize(tt.label, DomainAirport); got != tt.want {
				t.Errorf("Canonicalize(%q, airport) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeSupermarket(t *testing.T) {
	tests := []struct {
		label string
		want  Key
	}{
		{"Shoppers", KeyUser},
		{"Customer", KeyUser},
		{"Trolleys", KeyLuggage},
		{"basket bay 2", KeyLuggage},
		{"Staff", KeyStaff},
		{"Sound", KeySound},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Canonicalize(tt.label, DomainSupermarket); got != tt.want {
				t.Errorf("Canonicalize(%q, supermarket) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeUnknownDomainFallsBackToRegistry(t *testing.T) {
	// A domain with no override table still resolves against the base keys.
	if got := Canonicalize("luggages", Domain("warehouse")); got != KeyLuggage {
		t.Errorf("Canonicalize(luggages, warehouse) = %q, want %q", got, KeyLuggage)
	}
}

func TestCanonicalizeDeterministicOrder(t *testing.T) {
	// A label matching several aliases resolves to the first declared
	// override, every time.
	for i := 0; i < 50; i++ {
		if got := Canonicalize("passenger luggage", DomainAirport); got != KeyUser {
			t.Fatalf("Canonicalize(passenger luggage) = %q, want stable %q", got, KeyUser)
		}
	}
}
