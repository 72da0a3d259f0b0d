package native

import (
	"testing"
)

// fakeStrategy is a substitute positioning strategy.
type fakeStrategy struct {
	lat, lon float64
	ok       bool
	panics   bool
	calls    int
}

func (f *fakeStrategy) Name() string { return "fake" }

func (f *fakeStrategy) Coordinates() (float64, float64, bool) {
	f.calls++
	if f.panics {
		panic("strategy exploded")
	}
	return f.lat, f.lon, f.ok
}

// TestProvider_Coordinates tests fix handling, zero rejection and failure
// absorption
func TestProvider_Coordinates(t *testing.T) {
	tests := []struct {
		name     string
		strategy *fakeStrategy
		wantLat  float64
		wantLon  float64
		wantOK   bool
	}{
		{"valid fix", &fakeStrategy{lat: 48.85, lon: 2.35, ok: true}, 48.85, 2.35, true},
		{"unavailable", &fakeStrategy{ok: false}, 0, 0, false},
		{"zero-valued fix rejected", &fakeStrategy{lat: 0, lon: 0, ok: true}, 0, 0, false},
		{"zero latitude alone accepted", &fakeStrategy{lat: 0, lon: 6.6, ok: true}, 0, 6.6, true},
		{"panicking strategy absorbed", &fakeStrategy{panics: true}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewProviderWithStrategy(tt.strategy, nil)

			lat, lon, ok := provider.Coordinates()

			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if lat != tt.wantLat || lon != tt.wantLon {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantLat, tt.wantLon, lat, lon)
			}
			if tt.strategy.calls != 1 {
				t.Errorf("expected strategy queried once, got %d", tt.strategy.calls)
			}
		})
	}
}

// TestStrategyFor tests platform dispatch
func TestStrategyFor(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "gpsd"},
		{"darwin", "corelocation"},
		{"windows", "windows-location"},
		{"plan9", "unsupported (plan9)"},
		{"js", "unsupported (js)"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := StrategyFor(tt.goos).Name(); got != tt.want {
				t.Errorf("StrategyFor(%q).Name() = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

// TestParseLatLon tests helper output parsing
func TestParseLatLon(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{"plain pair", "48.8566 2.3522", 48.8566, 2.3522, true},
		{"trailing newline", "40.7128 -74.0060\n", 40.7128, -74.0060, true},
		{"extra fields ignored", "1.5 -2.5 altitude 30", 1.5, -2.5, true},
		{"empty", "", 0, 0, false},
		{"single value", "48.8566", 0, 0, false},
		{"not numbers", "lat lon", 0, 0, false},
		{"second not a number", "48.85 east", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, ok := parseLatLon([]byte(tt.output))

			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && (lat != tt.wantLat || lon != tt.wantLon) {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantLat, tt.wantLon, lat, lon)
			}
		})
	}
}
