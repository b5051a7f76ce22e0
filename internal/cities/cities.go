// Package cities maps destination names to TBO city codes.
//
// The copilot covers a curated set of top destinations pre-mapped from TBO's
// CityList reference data. Lookups are case-insensitive; near-miss inputs get
// "did you mean" suggestions via Jaro-Winkler similarity so a mistyped voice
// transcription still resolves to something useful.
package cities

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// City is one supported destination.
type City struct {
	Name        string
	Code        string
	Country     string
	CountryCode string
}

// Coords is a destination's map-centering point.
type Coords struct {
	Lat float64
	Lng float64
}

// suggestionThreshold is the minimum Jaro-Winkler similarity for a near-miss
// suggestion.
const suggestionThreshold = 0.84

var cityMap = []City{
	{"Dubai", "115936", "United Arab Emirates", "AE"},
	{"Abu Dhabi", "115935", "United Arab Emirates", "AE"},
	{"London", "127402", "United Kingdom", "GB"},
	{"Paris", "101014", "France", "FR"},
	{"New York", "132185", "United States", "US"},
	{"Bangkok", "126745", "Thailand", "TH"},
	{"Singapore", "121635", "Singapore", "SG"},
	{"New Delhi", "130443", "India", "IN"},
	{"Mumbai", "130065", "India", "IN"},
	{"Goa", "129164", "India", "IN"},
	{"Bali", "109286", "Indonesia", "ID"},
	{"Tokyo", "112667", "Japan", "JP"},
	{"Maldives", "119380", "Maldives", "MV"},
	{"Istanbul", "127400", "Turkey", "TR"},
	{"Rome", "112283", "Italy", "IT"},
	{"Barcelona", "123791", "Spain", "ES"},
	{"Sydney", "100498", "Australia", "AU"},
	{"Kuala Lumpur", "119075", "Malaysia", "MY"},
	{"Phuket", "126767", "Thailand", "TH"},
	{"Cairo", "100917", "Egypt", "EG"},
}

var coords = map[string]Coords{
	"Dubai":        {25.2048, 55.2708},
	"Abu Dhabi":    {24.4539, 54.3773},
	"Bali":         {-8.3405, 115.092},
	"London":       {51.5074, -0.1278},
	"Paris":        {48.8566, 2.3522},
	"New York":     {40.7128, -74.006},
	"Bangkok":      {13.7563, 100.5018},
	"Singapore":    {1.3521, 103.8198},
	"New Delhi":    {28.6139, 77.209},
	"Mumbai":       {19.076, 72.8777},
	"Goa":          {15.2993, 74.124},
	"Tokyo":        {35.6762, 139.6503},
	"Maldives":     {3.2028, 73.2207},
	"Istanbul":     {41.0082, 28.9784},
	"Rome":         {41.9028, 12.4964},
	"Barcelona":    {41.3874, 2.1686},
	"Sydney":       {-33.8688, 151.2093},
	"Kuala Lumpur": {3.139, 101.6869},
	"Phuket":       {7.8804, 98.3923},
	"Cairo":        {30.0444, 31.2357},
}

// Resolve looks up a destination by name, case-insensitively. When the name
// does not match, ok is false.
func Resolve(name string) (City, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range cityMap {
		if strings.ToLower(c.Name) == needle {
			return c, true
		}
	}
	return City{}, false
}

// Suggest returns supported destination names similar to the given input,
// best match first. It returns nil when nothing comes close.
func Suggest(name string) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}
	var matches []scored
	for _, c := range cityMap {
		score := matchr.JaroWinkler(needle, strings.ToLower(c.Name), true)
		if score >= suggestionThreshold {
			matches = append(matches, scored{c.Name, score})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

// Names returns all supported destination names in their canonical form.
func Names() []string {
	out := make([]string, 0, len(cityMap))
	for _, c := range cityMap {
		out = append(out, c.Name)
	}
	return out
}

// CoordsFor returns the map-centering coordinates for a destination.
func CoordsFor(name string) (Coords, bool) {
	city, ok := Resolve(name)
	if !ok {
		return Coords{}, false
	}
	c, ok := coords[city.Name]
	return c, ok
}
