package cities

import "testing"

// TestResolve_CaseInsensitive checks the same city resolves regardless of
// input casing.
func TestResolve_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"dubai", "Dubai", "DUBAI", "  Dubai  "} {
		city, ok := Resolve(input)
		if !ok {
			t.Fatalf("Resolve(%q) failed", input)
		}
		if city.Code != "115936" {
			t.Errorf("Resolve(%q) code = %s, want 115936", input, city.Code)
		}
		if city.CountryCode != "AE" {
			t.Errorf("Resolve(%q) country = %s, want AE", input, city.CountryCode)
		}
	}
}

// TestResolve_MultiWord checks multi-word destination names.
func TestResolve_MultiWord(t *testing.T) {
	city, ok := Resolve("kuala lumpur")
	if !ok {
		t.Fatal("Resolve(kuala lumpur) failed")
	}
	if city.Code != "119075" {
		t.Errorf("unexpected code: %s", city.Code)
	}
}

// TestResolve_Unknown checks an unsupported destination.
func TestResolve_Unknown(t *testing.T) {
	if _, ok := Resolve("Atlantis"); ok {
		t.Error("Resolve(Atlantis) should fail")
	}
}

// TestSuggest_NearMiss checks misspellings surface the intended city first.
func TestSuggest_NearMiss(t *testing.T) {
	cases := map[string]string{
		"Dubia":    "Dubai",
		"Singapor": "Singapore",
		"Istambul": "Istanbul",
	}
	for input, want := range cases {
		got := Suggest(input)
		if len(got) == 0 {
			t.Errorf("Suggest(%q) returned nothing", input)
			continue
		}
		if got[0] != want {
			t.Errorf("Suggest(%q)[0] = %q, want %q", input, got[0], want)
		}
	}
}

// TestSuggest_NoMatch checks gibberish yields no suggestions.
func TestSuggest_NoMatch(t *testing.T) {
	if got := Suggest("zzzzqqq"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
	if got := Suggest(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

// TestNames checks the full destination list is exposed.
func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 20 {
		t.Fatalf("expected 20 destinations, got %d", len(names))
	}
}

// TestCoordsFor checks coordinates resolve through the same case-insensitive
// lookup.
func TestCoordsFor(t *testing.T) {
	c, ok := CoordsFor("sydney")
	if !ok {
		t.Fatal("CoordsFor(sydney) failed")
	}
	if c.Lat != -33.8688 || c.Lng != 151.2093 {
		t.Errorf("unexpected coords: %+v", c)
	}
	if _, ok := CoordsFor("nowhere"); ok {
		t.Error("CoordsFor(nowhere) should fail")
	}
}
