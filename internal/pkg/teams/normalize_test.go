package teams

import "testing"

func TestNormalizeKnownCases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tottenham Hotspur", "tottenham"},
		{"Inter Milan", "inter"},
		{"New York Mets MLB", "ny mets"}, // suffix stripped, then alias
		{"FC Barcelona", "barcelona"},
		{"AFC FC Wimbledon", "wimbledon"}, // doubled prefix
		{"Team (Women)", "team"},
		{"Boston Red Sox", "boston red sox"},
		{"Paris Saint Germain", "psg"},
		{"Czechia", "czech republic"},
		{"Los Angeles Dodgers", "la dodgers"},
		{"Liverpool FC", "liverpool"},
		{"Inter Milan Serie A", "inter"},
		{"  rc   nonsense? spacing!  ", "rc nonsense spacing"},
		{"Mjällby AIF", "mjällby aif"},
		{"***", "***"}, // everything stripped: fall back to the original
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"Tottenham Hotspur",
		"Inter Milan",
		"New York Mets MLB",
		"FC Barcelona",
		"Boston Red Sox",
		"Paris Saint Germain",
		"Mjällby AIF",
		"Team (Women)",
		"IF Brommapojkarna Sweden",
		"Rapid Bucuresti Romania",
		"Universitario de Deportes Peru",
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", s, once, twice)
		}
	}
}

func TestNormalizeNeverEmpty(t *testing.T) {
	for _, s := range []string{"MLB", "fc", "Sweden", "(Women)", "?!"} {
		if got := Normalize(s); got == "" {
			t.Errorf("Normalize(%q) returned empty string", s)
		}
	}
}

func TestIsFuturesEntry(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Arsenal to lift the trophy", true},
		{"Manchester City to win the title", true},
		{"Liverpool (Corners)", true},
		{"Arsenal", false},
		{"Trophy FC", false},
	}
	for _, tt := range tests {
		if got := IsFuturesEntry(tt.in); got != tt.want {
			t.Errorf("IsFuturesEntry(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
