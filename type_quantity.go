package divtrack

import "github.com/shopspring/decimal"

// Quantity is a number of shares or units.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (t Quantity) Equal(p Quantity) bool { return t.value.Equal(p.value) }
func (t Quantity) Neg() Quantity         { return Quantity{value: t.value.Neg()} }
func (t Quantity) IsNegative() bool      { return t.value.IsNegative() }
func (t Quantity) IsPositive() bool      { return t.value.IsPositive() }
func (t Quantity) IsZero() bool          { return t.value.IsZero() }
func (t Quantity) String() string        { return t.value.String() }

// AsFloat returns the quantity as a float64, for spreadsheet cells.
func (t Quantity) AsFloat() float64 { return t.value.InexactFloat64() }

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}

func (t *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return t.value.UnmarshalJSON(decimalBytes)
}
