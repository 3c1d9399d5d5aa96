package marina

import "strconv"

// Location is the placement specific detail of a boat: where exactly it is.
//
// The concrete type determines the Placement. A nil Location means Unknown.
type Location interface {
	Placement() Placement
	// String returns the detail as written in the boats file.
	String() string
}

// SlipNumber is the number of the slip a boat is moored in.
type SlipNumber int

// LandBay is the letter of the bay a boat stands in.
type LandBay rune

// TrailerLicense is the license plate of the trailer carrying a boat.
type TrailerLicense string

// StorageSlot is the number of the storage slot a boat is kept in.
type StorageSlot int

func (SlipNumber) Placement() Placement     { return Slip }
func (LandBay) Placement() Placement        { return Land }
func (TrailerLicense) Placement() Placement { return Trailer }
func (StorageSlot) Placement() Placement    { return Storage }

func (n SlipNumber) String() string     { return strconv.Itoa(int(n)) }
func (b LandBay) String() string        { return string(rune(b)) }
func (l TrailerLicense) String() string { return string(l) }
func (n StorageSlot) String() string    { return strconv.Itoa(int(n)) }
