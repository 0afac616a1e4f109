package geo

import (
	"strconv"
	"strings"
)

// LocationUnavailable is the value used when every resolution stage failed
const LocationUnavailable = "Location unavailable"

// Address holds the reverse geocoding fields used to build a display string
type Address struct {
	Suburb        string `json:"suburb"`
	Village       string `json:"village"`
	Hamlet        string `json:"hamlet"`
	Neighbourhood string `json:"neighbourhood"`
	Locality      string `json:"locality"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Municipality  string `json:"municipality"`
	County        string `json:"county"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Postcode      string `json:"postcode"`
}

// Area returns the most specific neighbourhood-level name
func (a Address) Area() string {
	return firstNonEmpty(a.Suburb, a.Village, a.Hamlet, a.Neighbourhood, a.Locality)
}

// CityName returns the city-level name
func (a Address) CityName() string {
	return firstNonEmpty(a.City, a.Town, a.Municipality, a.County)
}

// FormatAddress renders "area, city, state, country - postal", leaving out
// missing parts without stray separators.
func FormatAddress(a Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Area(), a.CityName(), a.State, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	out := strings.Join(parts, ", ")
	if postal := strings.TrimSpace(a.Postcode); postal != "" {
		out += " - " + postal
	}
	return out
}

// FormatCoordinates renders the raw fix used when reverse geocoding fails
func FormatCoordinates(lat, lng float64) string {
	return "Lat: " + formatFloat(lat) + ", Lng: " + formatFloat(lng)
}

// FormatIPLocation renders "city, region, country". Missing fields stay
// blank so the separators are always present.
func FormatIPLocation(loc IPLocation) string {
	return loc.City + ", " + loc.Region + ", " + loc.CountryName
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
