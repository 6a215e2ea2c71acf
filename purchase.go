package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PurchaseKind is a typed string identifying the purchase declaration shape.
type PurchaseKind string

// Purchase kinds used for identifying purchase declarations.
const (
	KindMoney        PurchaseKind = "money"
	KindUnits        PurchaseKind = "units"
	KindDecimalUnits PurchaseKind = "decimal-units"
	KindWeight       PurchaseKind = "weight"
)

// Purchase is the common interface of the four purchase declaration shapes.
// The set is closed: every consumer dispatches with a type switch, so adding
// a shape is a compile-visible change in all of them.
type Purchase interface {
	Kind() PurchaseKind // Kind returns the shape discriminator persisted in JSON.
	Currency() string   // Currency returns the currency the purchase was paid in.
	Value() Money       // Value returns the cost basis, the amount originally paid.
	Equal(Purchase) bool
}

// MoneyPurchase declares a purchase by the total amount of money paid, with
// no notion of units (deposits, bonds, real estate).
type MoneyPurchase struct {
	Amount decimal.Decimal `json:"amount"`
	Cur    string          `json:"currency"`
}

func (p MoneyPurchase) Kind() PurchaseKind { return KindMoney }
func (p MoneyPurchase) Currency() string   { return p.Cur }
func (p MoneyPurchase) Value() Money       { return M(p.Amount, p.Cur) }
func (p MoneyPurchase) Equal(o Purchase) bool {
	q, ok := o.(MoneyPurchase)
	return ok && p.Amount.Equal(q.Amount) && p.Cur == q.Cur
}

func (p MoneyPurchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", p.Kind())
	w.Append("amount", p.Amount)
	w.Append("currency", p.Cur)
	return w.MarshalJSON()
}

// UnitPurchase declares a purchase of a whole number of units at a unit price
// (shares, collectible pieces).
type UnitPurchase struct {
	NumUnits  int64           `json:"numUnits"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Cur       string          `json:"currency"`
}

func (p UnitPurchase) Kind() PurchaseKind { return KindUnits }
func (p UnitPurchase) Currency() string   { return p.Cur }
func (p UnitPurchase) Value() Money       { return M(p.UnitPrice, p.Cur).Mul(Q(p.NumUnits)) }
func (p UnitPurchase) Equal(o Purchase) bool {
	q, ok := o.(UnitPurchase)
	return ok && p.NumUnits == q.NumUnits && p.UnitPrice.Equal(q.UnitPrice) && p.Cur == q.Cur
}

// Units returns the number of units as a quantity.
func (p UnitPurchase) Units() Quantity { return Q(p.NumUnits) }

func (p UnitPurchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", p.Kind())
	w.Append("numUnits", p.NumUnits)
	w.Append("unitPrice", p.UnitPrice)
	w.Append("currency", p.Cur)
	return w.MarshalJSON()
}

// DecimalUnitPurchase declares a purchase of a fractional number of units at
// a unit price (fund shares, cryptocurrency coins).
type DecimalUnitPurchase struct {
	NumUnits  decimal.Decimal `json:"numUnits"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Cur       string          `json:"currency"`
}

func (p DecimalUnitPurchase) Kind() PurchaseKind { return KindDecimalUnits }
func (p DecimalUnitPurchase) Currency() string   { return p.Cur }
func (p DecimalUnitPurchase) Value() Money       { return M(p.UnitPrice, p.Cur).Mul(Q(p.NumUnits)) }
func (p DecimalUnitPurchase) Equal(o Purchase) bool {
	q, ok := o.(DecimalUnitPurchase)
	return ok && p.NumUnits.Equal(q.NumUnits) && p.UnitPrice.Equal(q.UnitPrice) && p.Cur == q.Cur
}

// Units returns the number of units as a quantity.
func (p DecimalUnitPurchase) Units() Quantity { return Q(p.NumUnits) }

func (p DecimalUnitPurchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", p.Kind())
	w.Append("numUnits", p.NumUnits)
	w.Append("unitPrice", p.UnitPrice)
	w.Append("currency", p.Cur)
	return w.MarshalJSON()
}

// WeightPurchase declares a purchase by weight at a price per weight unit
// (precious metals).
type WeightPurchase struct {
	Weight decimal.Decimal `json:"weight"`
	Unit   string          `json:"unit"` // weight unit, e.g. "g" or "oz"
	Price  decimal.Decimal `json:"price"`
	Cur    string          `json:"currency"`
}

func (p WeightPurchase) Kind() PurchaseKind { return KindWeight }
func (p WeightPurchase) Currency() string   { return p.Cur }
func (p WeightPurchase) Value() Money       { return M(p.Price, p.Cur).Mul(Q(p.Weight)) }
func (p WeightPurchase) Equal(o Purchase) bool {
	q, ok := o.(WeightPurchase)
	return ok && p.Weight.Equal(q.Weight) && p.Unit == q.Unit && p.Price.Equal(q.Price) && p.Cur == q.Cur
}

func (p WeightPurchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", p.Kind())
	w.Append("weight", p.Weight)
	w.Optional("unit", p.Unit)
	w.Append("price", p.Price)
	w.Append("currency", p.Cur)
	return w.MarshalJSON()
}

// PurchaseValue derives the cost basis from a purchase declaration. It is
// total: any finite non-negative numbers yield a value, there is no error
// case.
func PurchaseValue(p Purchase) Money {
	return p.Value()
}

// DecodePurchase decodes a purchase declaration from its JSON form, using the
// "kind" discriminator field.
func DecodePurchase(raw json.RawMessage) (Purchase, error) {
	var identifier struct {
		Kind PurchaseKind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify purchase kind in %q: %w", string(raw), err)
	}
	switch identifier.Kind {
	case KindMoney:
		var p MoneyPurchase
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindUnits:
		var p UnitPurchase
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindDecimalUnits:
		var p DecimalUnitPurchase
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindWeight:
		var p WeightPurchase
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown purchase kind %q", identifier.Kind)
	}
}
