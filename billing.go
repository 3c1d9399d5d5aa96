package marina

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rates maps each placement to its monthly rate per foot of boat length.
// A placement missing from the map is not charged.
type Rates map[Placement]decimal.Decimal

// DefaultRates are the marina monthly rates per foot.
var DefaultRates = Rates{
	Slip:    decimal.RequireFromString("12.50"),
	Land:    decimal.RequireFromString("14.00"),
	Trailer: decimal.RequireFromString("25.00"),
	Storage: decimal.RequireFromString("11.20"),
	Unknown: decimal.Zero,
}

// Rate returns the monthly rate per foot of placement 'p'.
func (r Rates) Rate(p Placement) decimal.Decimal {
	return r[p] // zero value is a zero rate.
}

// Charge returns the monthly charge of boat 'b'.
func (r Rates) Charge(b *Boat) Money {
	return M(r.Rate(b.Placement()).Mul(decimal.NewFromInt(int64(b.Length))))
}

// LoadRates reads a YAML rate table like:
//
//	slip: 12.50
//	trailor: 25
//
// Placements not listed keep their DefaultRates value.
func LoadRates(r io.Reader) (Rates, error) {
	var raw map[string]float64
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot decode rates: %w", err)
	}
	rates := make(Rates, len(DefaultRates))
	for p, v := range DefaultRates {
		rates[p] = v
	}
	for name, v := range raw {
		p := ParsePlacement(name)
		if p == Unknown && strings.ToLower(name) != Unknown.String() {
			return nil, fmt.Errorf("unknown placement %q in rates", name)
		}
		rates[p] = decimal.NewFromFloat(v)
	}
	return rates, nil
}

// ApplyMonthlyCharges adds the monthly charge to the balance of every boat.
//
// Every call charges a new month: calling it twice charges twice.
func (r *Registry) ApplyMonthlyCharges(rates Rates) {
	for _, b := range r.boats {
		b.Owed = b.Owed.Add(rates.Charge(b))
	}
}

// ApplyPayment pays 'amount' for the first boat named 'name'.
//
// Payments must be positive and cannot exceed the amount owed: an
// *OverpaymentError is returned and the balance is left unchanged.
func (r *Registry) ApplyPayment(name string, amount Money) error {
	b, ok := r.Find(name)
	if !ok {
		return ErrNotFound
	}
	if !amount.IsPositive() {
		return ErrNonPositivePayment
	}
	if amount.GreaterThan(b.Owed) {
		return &OverpaymentError{Name: b.Name, Amount: amount, Owed: b.Owed}
	}
	b.Owed = b.Owed.Sub(amount)
	return nil
}
