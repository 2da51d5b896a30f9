package model

// Region is a game region code
type Region string

// Mode is a game mode code
type Mode string

// Supported regions and modes. These are closed sets: membership is
// checked before any paid action runs.
const (
	RegionBD  Region = "bd"
	RegionIND Region = "ind"
	RegionBR  Region = "br"
	RegionPK  Region = "pk"

	ModeBattleRoyale Mode = "br"
	ModeClashSquad   Mode = "cs"
)

var regions = map[Region]struct{}{
	RegionBD:  {},
	RegionIND: {},
	RegionBR:  {},
	RegionPK:  {},
}

var modes = map[Mode]struct{}{
	ModeBattleRoyale: {},
	ModeClashSquad:   {},
}

// ValidRegion reports whether code is a supported region
func ValidRegion(code string) bool {
	_, ok := regions[Region(code)]
	return ok
}

// ValidMode reports whether code is a supported mode
func ValidMode(code string) bool {
	_, ok := modes[Mode(code)]
	return ok
}
