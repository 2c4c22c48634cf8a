package ellipsoid

import (
	"sort"
	"strings"

	apperrors "github.com/agbru/radiusfit/internal/errors"
)

// Preset is a named reference ellipsoid.
type Preset struct {
	Name        string
	Description string
	Parameters
}

// presets holds the reference ellipsoids selectable by name. Radii whose
// published definition is by inverse flattening are stored as b = a(1 - 1/rf).
var presets = map[string]Preset{
	"wgs84": {
		Name:        "wgs84",
		Description: "World Geodetic System 1984",
		Parameters:  WGS84,
	},
	"grs80": {
		Name:        "grs80",
		Description: "GRS 1980 (IUGG, 1980)",
		Parameters:  Parameters{Equatorial: 6378137.0, Polar: 6356752.314140},
	},
	"airy": {
		Name:        "airy",
		Description: "Airy 1830",
		Parameters:  Parameters{Equatorial: 6377563.396, Polar: 6356256.910},
	},
	"mod_airy": {
		Name:        "mod_airy",
		Description: "Modified Airy",
		Parameters:  Parameters{Equatorial: 6377340.189, Polar: 6356034.446},
	},
	"everest": {
		Name:        "everest",
		Description: "Everest 1830",
		Parameters:  Parameters{Equatorial: 6377276.345, Polar: 6356075.413},
	},
	"intl": {
		Name:        "intl",
		Description: "International 1924 (Hayford 1909)",
		Parameters:  Parameters{Equatorial: 6378388.0, Polar: 6356911.946},
	},
}

// Lookup returns the preset registered under name (case-insensitive).
func Lookup(name string) (Preset, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, apperrors.NewInvalidParameterError("ellipsoid", name,
			"unknown preset; available: %s", strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// PresetNames lists the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
