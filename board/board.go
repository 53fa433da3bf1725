// Package board holds the static reference table of provinces on the
// standard map and resolves raw order text against it. The parser hands
// over whatever substring it recognized as a place name; this package is
// where "western med" becomes Western Mediterranean.
package board

import "strings"

// Kind classifies a province by what can occupy it.
type Kind int

const (
	Land  Kind = iota // armies only
	Coast             // coast-adjacent, reachable by armies and fleets
	Sea               // fleets only
)

func (k Kind) String() string {
	switch k {
	case Land:
		return "land"
	case Coast:
		return "coast"
	case Sea:
		return "sea"
	default:
		return "unknown"
	}
}

// Province is one named board location. SC marks a supply center.
type Province struct {
	Name string
	Kind Kind
	SC   bool
}

// Provinces is the standard-map reference table.
var Provinces = []Province{
	{Name: "Bohemia", Kind: Land},
	{Name: "Budapest", Kind: Land, SC: true},
	{Name: "Galicia", Kind: Land},
	{Name: "Trieste", Kind: Land, SC: true},
	{Name: "Tyrolia", Kind: Land},
	{Name: "Vienna", Kind: Land, SC: true},
	{Name: "Clyde", Kind: Land},
	{Name: "Edinburgh", Kind: Land, SC: true},
	{Name: "Liverpool", Kind: Land, SC: true},
	{Name: "London", Kind: Land, SC: true},
	{Name: "Wales", Kind: Land},
	{Name: "Yorkshire", Kind: Land},
	{Name: "Brest", Kind: Land, SC: true},
	{Name: "Burgundy", Kind: Land},
	{Name: "Gascony", Kind: Land},
	{Name: "Marseilles", Kind: Land, SC: true},
	{Name: "Paris", Kind: Land, SC: true},
	{Name: "Picardy", Kind: Land},
	{Name: "Berlin", Kind: Land, SC: true},
	{Name: "Kiel", Kind: Land, SC: true},
	{Name: "Munich", Kind: Land, SC: true},
	{Name: "Prussia", Kind: Land},
	{Name: "Ruhr", Kind: Land},
	{Name: "Silesia", Kind: Land},
	{Name: "Apulia", Kind: Land},
	{Name: "Naples", Kind: Land, SC: true},
	{Name: "Piedmont", Kind: Land},
	{Name: "Rome", Kind: Land, SC: true},
	{Name: "Tuscany", Kind: Land},
	{Name: "Venice", Kind: Land, SC: true},
	{Name: "Livonia", Kind: Land},
	{Name: "Moscow", Kind: Land, SC: true},
	{Name: "Sevastopol", Kind: Land, SC: true},
	{Name: "St. Petersburg", Kind: Land, SC: true},
	{Name: "Ukraine", Kind: Land},
	{Name: "Warsaw", Kind: Land, SC: true},
	{Name: "Ankara", Kind: Land, SC: true},
	{Name: "Armenia", Kind: Land},
	{Name: "Constantinople", Kind: Land, SC: true},
	{Name: "Smyrna", Kind: Land, SC: true},
	{Name: "Syria", Kind: Land},
	{Name: "Albania", Kind: Land},
	{Name: "Belgium", Kind: Land, SC: true},
	{Name: "Bulgaria", Kind: Land, SC: true},
	{Name: "Finland", Kind: Land},
	{Name: "Greece", Kind: Land, SC: true},
	{Name: "Holland", Kind: Land, SC: true},
	{Name: "Norway", Kind: Land, SC: true},
	{Name: "North Africa", Kind: Land},
	{Name: "Portugal", Kind: Land, SC: true},
	{Name: "Rumania", Kind: Land, SC: true},
	{Name: "Serbia", Kind: Land, SC: true},
	{Name: "Spain", Kind: Land, SC: true},
	{Name: "Sweden", Kind: Land, SC: true},
	{Name: "Tunis", Kind: Land, SC: true},
	{Name: "Adriatic Sea", Kind: Sea},
	{Name: "Aegean Sea", Kind: Sea},
	{Name: "Baltic Sea", Kind: Sea},
	{Name: "Barents Sea", Kind: Sea},
	{Name: "Black Sea", Kind: Sea},
	{Name: "Eastern Mediterranean", Kind: Sea},
	{Name: "English Channel", Kind: Sea},
	{Name: "Gulf of Bothnia", Kind: Sea},
	{Name: "Gulf of Lyon", Kind: Sea},
	{Name: "Helgoland Bight", Kind: Sea},
	{Name: "Ionian Sea", Kind: Sea},
	{Name: "Irish Sea", Kind: Sea},
	{Name: "Mid Atlantic Ocean", Kind: Sea},
	{Name: "North Atlantic Ocean", Kind: Sea},
	{Name: "North Sea", Kind: Sea},
	{Name: "Norwegian Sea", Kind: Sea},
	{Name: "Skagerrak", Kind: Sea},
	{Name: "Tyrrhenian Sea", Kind: Sea},
	{Name: "Western Mediterranean", Kind: Sea},
}

// Resolve matches raw order text against the province table. Matching is
// case-insensitive; a trailing parenthesized coast tag like "(sc)" is
// stripped first. An exact match wins, otherwise the name must be a unique
// word-by-word prefix of exactly one table entry, so abbreviations like
// "western med" resolve while ambiguous ones like "nor" do not.
func Resolve(name string) (Province, bool) {
	words := splitName(name)
	if len(words) == 0 {
		return Province{}, false
	}

	var (
		match Province
		hits  int
	)
	for _, p := range Provinces {
		target := splitName(p.Name)
		if equalWords(words, target) {
			return p, true
		}
		if prefixWords(words, target) {
			match = p
			hits++
		}
	}
	if hits == 1 {
		return match, true
	}
	return Province{}, false
}

// splitName lowercases, strips a trailing "(...)" coast tag and splits on
// whitespace.
func splitName(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndex(name, "("); i >= 0 && strings.HasSuffix(name, ")") {
		name = strings.TrimSpace(name[:i])
	}
	return strings.Fields(name)
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// prefixWords reports whether every word of a is a prefix of the
// corresponding word of b. a may name fewer words than b, so "north
// atlantic" matches North Atlantic Ocean.
func prefixWords(a, b []string) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if !strings.HasPrefix(b[i], a[i]) {
			return false
		}
	}
	return true
}
