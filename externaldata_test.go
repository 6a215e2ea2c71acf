package wallet

import (
	"errors"
	"testing"
)

func TestConvert(t *testing.T) {
	data := &ExternalData{
		ExchangeRates: map[string]float64{
			"USD": 1.25,
			"CHF": 0.95,
		},
	}

	tests := []struct {
		name string
		in   Money
		to   string
		want Money
	}{
		{"same currency is identity", M(100, "USD"), "USD", M(100, "USD")},
		{"to euro", M(125, "USD"), "EUR", M(100, "EUR")},
		{"from euro", M(100, "EUR"), "USD", M(125, "USD")},
		{"cross rate through the euro", M(125, "USD"), "CHF", M(95, "CHF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := data.Convert(tt.in, tt.to)
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Convert(%v, %q) = %v, want %v", tt.in, tt.to, got, tt.want)
			}
		})
	}

	t.Run("missing source currency", func(t *testing.T) {
		_, err := data.Convert(M(100, "JPY"), "EUR")
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("Convert() error = %v, want ErrUnavailable", err)
		}
	})
	t.Run("missing target currency", func(t *testing.T) {
		_, err := data.Convert(M(100, "USD"), "JPY")
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("Convert() error = %v, want ErrUnavailable", err)
		}
	})
	t.Run("same missing currency still converts", func(t *testing.T) {
		// Identity conversion needs no rate at all.
		got, err := data.Convert(M(100, "JPY"), "JPY")
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if want := M(100, "JPY"); !got.Equal(want) {
			t.Errorf("Convert() = %v, want %v", got, want)
		}
	})
}

func TestConvertRoundTrip(t *testing.T) {
	data := &ExternalData{ExchangeRates: map[string]float64{"USD": 1.25}}

	usd, err := data.Convert(M(100, "EUR"), "USD")
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	back, err := data.Convert(usd, "EUR")
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	if want := M(100, "EUR"); !back.Equal(want) {
		t.Errorf("round trip = %v, want %v", back, want)
	}
}

func TestQuoteValue(t *testing.T) {
	data := &ExternalData{Quotes: map[string]float64{"IE00B4L5Y983": 110.5}}

	if v, err := data.QuoteValue("IE00B4L5Y983"); err != nil || v != 110.5 {
		t.Errorf("QuoteValue() = %v, %v, want 110.5, nil", v, err)
	}
	if _, err := data.QuoteValue("unknown"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("QuoteValue() error = %v, want ErrUnavailable", err)
	}
}

func TestCryptoRate(t *testing.T) {
	data := &ExternalData{CryptoRates: map[string]float64{"bitcoin": 60000}}

	if v, err := data.CryptoRate("bitcoin"); err != nil || v != 60000 {
		t.Errorf("CryptoRate() = %v, %v, want 60000, nil", v, err)
	}
	if _, err := data.CryptoRate("dogecoin"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CryptoRate() error = %v, want ErrUnavailable", err)
	}
}
