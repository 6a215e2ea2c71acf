package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MethodKind is a typed string identifying the value-calculation method.
type MethodKind string

// Method kinds used for identifying value-calculation methods.
const (
	KindManual   MethodKind = "manual"
	KindQuote    MethodKind = "quote"
	KindCrypto   MethodKind = "cryptocurrency"
	KindInterest MethodKind = "interest"
)

// Method is the common interface of the value-calculation methods. Like
// Purchase it is a closed set dispatched with type switches.
type Method interface {
	Kind() MethodKind
	Equal(Method) bool
}

// ManualMethod values the investment at a user-maintained current value,
// expressed in the purchase currency.
type ManualMethod struct {
	CurrentValue decimal.Decimal `json:"currentValue"`
}

func (m ManualMethod) Kind() MethodKind { return KindManual }
func (m ManualMethod) Equal(o Method) bool {
	q, ok := o.(ManualMethod)
	return ok && m.CurrentValue.Equal(q.CurrentValue)
}

func (m ManualMethod) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", m.Kind())
	w.Append("currentValue", m.CurrentValue)
	return w.MarshalJSON()
}

// QuoteMethod values the investment from an external market quote for a
// ticker, priced per unit (or per weight unit for weight purchases).
type QuoteMethod struct {
	Ticker string `json:"ticker"`
}

func (m QuoteMethod) Kind() MethodKind { return KindQuote }
func (m QuoteMethod) Equal(o Method) bool {
	q, ok := o.(QuoteMethod)
	return ok && m.Ticker == q.Ticker
}

func (m QuoteMethod) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", m.Kind())
	w.Append("ticker", m.Ticker)
	return w.MarshalJSON()
}

// CryptoMethod values the investment from a cryptocurrency exchange rate,
// priced per coin in EUR.
type CryptoMethod struct {
	CryptoID string `json:"cryptocurrencyId"`
}

func (m CryptoMethod) Kind() MethodKind { return KindCrypto }
func (m CryptoMethod) Equal(o Method) bool {
	q, ok := o.(CryptoMethod)
	return ok && m.CryptoID == q.CryptoID
}

func (m CryptoMethod) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", m.Kind())
	w.Append("cryptocurrencyId", m.CryptoID)
	return w.MarshalJSON()
}

// InterestMethod values the investment as its purchase value plus accrued
// interest from the investment's interest periods.
type InterestMethod struct{}

func (m InterestMethod) Kind() MethodKind { return KindInterest }
func (m InterestMethod) Equal(o Method) bool {
	_, ok := o.(InterestMethod)
	return ok
}

func (m InterestMethod) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", m.Kind())
	return w.MarshalJSON()
}

// DecodeMethod decodes a value-calculation method from its JSON form, using
// the "kind" discriminator field.
func DecodeMethod(raw json.RawMessage) (Method, error) {
	var identifier struct {
		Kind MethodKind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify method kind in %q: %w", string(raw), err)
	}
	switch identifier.Kind {
	case KindManual:
		var m ManualMethod
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		return m, nil
	case KindQuote:
		var m QuoteMethod
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		return m, nil
	case KindCrypto:
		var m CryptoMethod
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		return m, nil
	case KindInterest:
		return InterestMethod{}, nil
	default:
		return nil, fmt.Errorf("unknown method kind %q", identifier.Kind)
	}
}
