package marina

import (
	"fmt"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// boat is a test helper to build boats concisely.
func boat(name string, length int, loc Location, owed string) *Boat {
	return &Boat{Name: name, Length: length, Location: loc, Owed: M(decimal.RequireFromString(owed))}
}

// names returns the boat names in registry order.
func names(r *Registry) []string {
	var n []string
	for _, b := range r.Boats() {
		n = append(n, b.Name)
	}
	return n
}

// fill returns a registry with 'n' distinct boats.
func fill(n int) *Registry {
	r := NewRegistry()
	for i := range n {
		if err := r.Insert(boat(fmt.Sprintf("boat-%03d", i), 20, SlipNumber(i), "0")); err != nil {
			panic(err)
		}
	}
	return r
}

// genBoat draws a valid boat, one that survives a trip to the boats file.
func genBoat(t *rapid.T) *Boat {
	b := &Boat{
		Name:   rapid.StringMatching(`[A-Za-z][A-Za-z0-9 '-]{0,20}`).Draw(t, "name"),
		Length: rapid.IntRange(1, 150).Draw(t, "length"),
		Owed:   M(decimal.New(rapid.Int64Range(0, 10_000_000).Draw(t, "cents"), -2)),
	}
	switch rapid.SampledFrom(Placements).Draw(t, "placement") {
	case Slip:
		b.Location = SlipNumber(rapid.IntRange(0, 999).Draw(t, "slip"))
	case Land:
		b.Location = rapid.SampledFrom([]LandBay{'A', 'B', 'C', 'D', 'x'}).Draw(t, "bay")
	case Trailer:
		b.Location = TrailerLicense(rapid.StringMatching(`[A-Z0-9]{0,9}`).Draw(t, "license"))
	case Storage:
		b.Location = StorageSlot(rapid.IntRange(0, 999).Draw(t, "storage"))
	}
	return b
}
