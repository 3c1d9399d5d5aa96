package renderer

import (
	"github.com/etnz/marina"
)

// Inventory is the view of the marina boats, in registry order.
type Inventory struct {
	Boats   []Boat
	Total   string // Total owed, formatted.
	Charges string // Charges is the sum of all monthly charges, formatted.
}

// Boat is a single row of the inventory.
type Boat struct {
	Name      string
	Length    int
	Placement string // Placement name, as in the boats file.
	Detail    string // Detail of the location, "N/A" for unknown placements.
	Charge    string // Charge is the monthly charge, formatted.
	Owed      string // Owed is the balance, formatted.
	Amount    string // Amount is the balance with two digits and no currency symbol.
}

// NewInventory builds the inventory view of a registry, charges being computed with 'rates'.
func NewInventory(reg *marina.Registry, rates marina.Rates) *Inventory {
	inv := &Inventory{}
	var charges marina.Money
	for _, b := range reg.Boats() {
		charge := rates.Charge(b)
		charges = charges.Add(charge)
		inv.Boats = append(inv.Boats, Boat{
			Name:      b.Name,
			Length:    b.Length,
			Placement: b.Placement().String(),
			Detail:    b.Detail(),
			Charge:    charge.String(),
			Owed:      b.Owed.String(),
			Amount:    b.Owed.Fixed(),
		})
	}
	inv.Total = reg.Total().String()
	inv.Charges = charges.String()
	return inv
}
