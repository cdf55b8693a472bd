package normalizer

import "testing"

func TestRenderDuration(t *testing.T) {
	tests := map[string]string{
		"PT2H30M": "2h 30m",
		"PT14H":   "14h",
		"PT45M":   "45m",
		"PT0H5M":  "0h 5m",
		"pt1h1m":  "1h 1m",
		"PT":      "PT",
		"P1DT2H":  "P1DT2H",
		"":        "",
		"2 hours": "2 hours",
	}
	for in, want := range tests {
		if got := RenderDuration(in); got != want {
			t.Errorf("RenderDuration(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDurationLabel(t *testing.T) {
	tests := map[string]int{
		"2h 30m":  150,
		"14h":     840,
		"45m":     45,
		"0h 5m":   5,
		"":        0,
		"P1DT2H":  0,
		"soon":    0,
		" 1h 1m ": 61,
	}
	for in, want := range tests {
		if got := ParseDurationLabel(in); got != want {
			t.Errorf("ParseDurationLabel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	if got := ParseDurationLabel(RenderDuration("PT2H30M")); got != 150 {
		t.Errorf("round trip = %d, want 150", got)
	}
}

func TestLayoverLabel(t *testing.T) {
	tests := []struct {
		airport string
		minutes int
		want    string
	}{
		{"DEN", 90, "DEN (1h 30m)"},
		{"ORD", 45, "ORD (0h 45m)"},
		{"LHR", 0, "LHR (0h 0m)"},
		{"CDG", -20, "CDG (0h 0m)"},
		{"DXB", 600, "DXB (10h 0m)"},
	}
	for _, tt := range tests {
		if got := layoverLabel(tt.airport, tt.minutes); got != tt.want {
			t.Errorf("layoverLabel(%q, %d) = %q, want %q", tt.airport, tt.minutes, got, tt.want)
		}
	}
}

func TestLogoURL(t *testing.T) {
	if got := LogoURL(" ba "); got != "https://pics.avs.io/200/200/BA.png" {
		t.Errorf("LogoURL = %q", got)
	}
}
