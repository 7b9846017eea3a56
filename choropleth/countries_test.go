package choropleth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"United-Kingdom", "United Kingdom"},
		{"UK", "United Kingdom"},
		{"Czech Republic", "Czechia"},
		{"Turkiye", "Turkey"},
		{"USA", "United States of America"},
		{"Bosnia-Herzegovina", "Bosnia and Herz."},
		{"Germany", "Germany"}, // unmapped names pass through
	}

	for _, test := range tests {
		if got := CanonicalName(test.in, nil); got != test.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestCanonicalNameExtraWins(t *testing.T) {
	extra := map[string]string{"UK": "Britain"}
	if got := CanonicalName("UK", extra); got != "Britain" {
		t.Errorf("user alias should take precedence, got %q", got)
	}
}

func TestLoadAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.csv")
	content := "from,to\nHolland,Netherlands\nSwiss,Switzerland\n,ignored\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases: %v", err)
	}
	if len(aliases) != 2 {
		t.Fatalf("expected 2 aliases, got %v", aliases)
	}
	if aliases["Holland"] != "Netherlands" {
		t.Errorf("Holland maps to %q", aliases["Holland"])
	}
}

func TestMatch(t *testing.T) {
	features := []*Feature{
		{Names: [][2]string{{"NAME", "Germany"}, {"ADMIN", "Federal Republic of Germany"}}},
		{Names: [][2]string{{"NAME", "Czechia"}}},
		{Names: [][2]string{{"NAME", "Bosnia and Herz."}}},
	}
	counts := []CountryCount{
		{"Germany", 10},
		{"Czech Republic", 5}, // alias match
		{"Bosnia", 3},         // substring match
		{"Atlantis", 1},       // no match
	}

	res := Match(features, counts, nil)

	if res.Matched != 3 {
		t.Fatalf("Matched = %d, want 3", res.Matched)
	}
	if len(res.Unmatched) != 1 || res.Unmatched[0].Country != "Atlantis" {
		t.Fatalf("Unmatched = %v", res.Unmatched)
	}
	if res.Fuzzy["Bosnia"] != "Bosnia and Herz." {
		t.Errorf("Fuzzy = %v", res.Fuzzy)
	}

	if !features[0].HasData || features[0].Count != 10 {
		t.Errorf("Germany feature not joined: %+v", features[0])
	}
	if !features[1].HasData || features[1].Count != 5 {
		t.Errorf("Czechia feature not joined: %+v", features[1])
	}
}
