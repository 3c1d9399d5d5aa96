package marina

import (
	"strings"
)

const (
	// MaxNameLength is the maximum length of a boat name.
	MaxNameLength = 127
	// MaxLicenseLength is the maximum length of a trailer license. Longer ones are truncated.
	MaxLicenseLength = 9
)

// Boat is a boat of the marina and its account.
type Boat struct {
	Name     string   // Name identifies the boat, case-insensitively.
	Length   int      // Length in feet.
	Location Location // Location is where the boat is, nil if unknown.
	Owed     Money    // Owed is the running balance of unpaid fees.
}

// Placement returns the storage category of the boat.
func (b *Boat) Placement() Placement {
	if b.Location == nil {
		return Unknown
	}
	return b.Location.Placement()
}

// Detail returns the location detail as written in the boats file, "N/A" for unknown placement.
func (b *Boat) Detail() string {
	if b.Location == nil {
		return "N/A"
	}
	return b.Location.String()
}

// Equal reports whether both boats have the same fields.
func (b *Boat) Equal(o *Boat) bool {
	return b.Name == o.Name &&
		b.Length == o.Length &&
		b.Location == o.Location &&
		b.Owed.Equal(o.Owed)
}

// compareNames orders names case-insensitively. It is the only rule to
// compare names: sorting and lookup must agree.
func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
