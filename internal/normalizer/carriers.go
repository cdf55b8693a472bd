package normalizer

import (
	"fmt"
	"strings"
)

const logoURLTemplate = "https://pics.avs.io/200/200/%s.png"

// knownCarriers is the fallback name table used when a search response
// does not carry its own carrier dictionary entry.
var knownCarriers = map[string]string{
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AF": "Air France",
	"AI": "Air India",
	"AK": "AirAsia",
	"AY": "Finnair",
	"AZ": "ITA Airways",
	"BA": "British Airways",
	"CX": "Cathay Pacific",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"ET": "Ethiopian Airlines",
	"EY": "Etihad Airways",
	"FR": "Ryanair",
	"GA": "Garuda Indonesia",
	"IB": "Iberia",
	"ID": "Batik Air",
	"JL": "Japan Airlines",
	"JT": "Lion Air",
	"KE": "Korean Air",
	"KL": "KLM",
	"LH": "Lufthansa",
	"LX": "Swiss",
	"MH": "Malaysia Airlines",
	"NH": "ANA",
	"NZ": "Air New Zealand",
	"OS": "Austrian Airlines",
	"QF": "Qantas",
	"QR": "Qatar Airways",
	"SK": "SAS",
	"SQ": "Singapore Airlines",
	"TG": "Thai Airways",
	"TK": "Turkish Airlines",
	"TP": "TAP Air Portugal",
	"U2": "easyJet",
	"UA": "United Airlines",
	"UX": "Air Europa",
	"VS": "Virgin Atlantic",
	"W6": "Wizz Air",
	"6E": "IndiGo",
}

// Resolver maps a carrier code to a display name. ok is false when the
// resolver has no entry for the code.
type Resolver func(code string) (name string, ok bool)

// TableResolver looks codes up in a fixed code-to-name table.
func TableResolver(table map[string]string) Resolver {
	return func(code string) (string, bool) {
		name, ok := table[strings.ToUpper(strings.TrimSpace(code))]
		return name, ok && name != ""
	}
}

// NameResolver tries each resolver in order and falls back to the raw code.
type NameResolver []Resolver

func (r NameResolver) Resolve(code string) string {
	for _, resolve := range r {
		if name, ok := resolve(code); ok {
			return name
		}
	}
	return code
}

// resolverFor builds the lookup chain for one search response: the
// response's own dictionary first, then the static table.
func (n *Normalizer) resolverFor(dictionary map[string]string) NameResolver {
	return NameResolver{
		TableResolver(dictionary),
		TableResolver(n.carriers),
	}
}

// LogoURL returns the logo image location for a carrier code.
func LogoURL(code string) string {
	return fmt.Sprintf(logoURLTemplate, strings.ToUpper(strings.TrimSpace(code)))
}
