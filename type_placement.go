package marina

import "strings"

// Placement is the physical storage category of a boat.
type Placement int

const (
	// Unknown is for boats with no known placement. They are never charged.
	Unknown Placement = iota
	// Slip is a boat moored in a numbered slip.
	Slip
	// Land is a boat standing on land, in a lettered bay.
	Land
	// Trailer is a boat parked on a trailer, identified by its license.
	Trailer
	// Storage is a boat in a numbered storage slot.
	Storage
)

// Placements lists every placement, in file order.
var Placements = []Placement{Slip, Land, Trailer, Storage, Unknown}

// String returns the name used in the boats file.
func (p Placement) String() string {
	switch p {
	case Slip:
		return "slip"
	case Land:
		return "land"
	case Trailer:
		return "trailor" // historical spelling of the boats file.
	case Storage:
		return "storage"
	default:
		return "no_place"
	}
}

// ParsePlacement converts a placement name, case-insensitively.
// Anything unrecognized is Unknown.
func ParsePlacement(s string) Placement {
	switch strings.ToLower(s) {
	case "slip":
		return Slip
	case "land":
		return Land
	case "trailor", "trailer":
		return Trailer
	case "storage":
		return Storage
	default:
		return Unknown
	}
}
