package wallet

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPurchaseValue(t *testing.T) {
	tests := []struct {
		name     string
		purchase Purchase
		want     Money
	}{
		{
			"money",
			MoneyPurchase{Amount: decimal.NewFromInt(1000), Cur: "EUR"},
			M(1000, "EUR"),
		},
		{
			"units",
			UnitPurchase{NumUnits: 10, UnitPrice: decimal.NewFromFloat(85.5), Cur: "USD"},
			M(855, "USD"),
		},
		{
			"decimal units",
			DecimalUnitPurchase{NumUnits: decimal.NewFromFloat(0.5), UnitPrice: decimal.NewFromInt(60000), Cur: "EUR"},
			M(30000, "EUR"),
		},
		{
			"weight",
			WeightPurchase{Weight: decimal.NewFromFloat(31.1), Unit: "g", Price: decimal.NewFromInt(75), Cur: "EUR"},
			M(2332.5, "EUR"),
		},
		{
			"zero units",
			UnitPurchase{NumUnits: 0, UnitPrice: decimal.NewFromInt(100), Cur: "EUR"},
			M(0, "EUR"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PurchaseValue(tt.purchase)
			if !got.Equal(tt.want) {
				t.Errorf("PurchaseValue(%v) = %v, want %v", tt.purchase, got, tt.want)
			}
		})
	}
}

func TestDecodePurchase(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Purchase
	}{
		{
			"money",
			`{"kind":"money","amount":1000,"currency":"EUR"}`,
			MoneyPurchase{Amount: decimal.NewFromInt(1000), Cur: "EUR"},
		},
		{
			"units",
			`{"kind":"units","numUnits":10,"unitPrice":85.5,"currency":"USD"}`,
			UnitPurchase{NumUnits: 10, UnitPrice: decimal.NewFromFloat(85.5), Cur: "USD"},
		},
		{
			"decimal units",
			`{"kind":"decimal-units","numUnits":0.5,"unitPrice":60000,"currency":"EUR"}`,
			DecimalUnitPurchase{NumUnits: decimal.NewFromFloat(0.5), UnitPrice: decimal.NewFromInt(60000), Cur: "EUR"},
		},
		{
			"weight",
			`{"kind":"weight","weight":31.1,"unit":"g","price":75,"currency":"EUR"}`,
			WeightPurchase{Weight: decimal.NewFromFloat(31.1), Unit: "g", Price: decimal.NewFromInt(75), Cur: "EUR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePurchase(json.RawMessage(tt.json))
			if err != nil {
				t.Fatalf("DecodePurchase() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("DecodePurchase() = %#v, want %#v", got, tt.want)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := DecodePurchase(json.RawMessage(`{"kind":"loan"}`)); err == nil {
			t.Error("DecodePurchase() expected an error for unknown kind")
		}
	})
}

func TestDecodeMethod(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Method
	}{
		{"manual", `{"kind":"manual","currentValue":1200}`, ManualMethod{CurrentValue: decimal.NewFromInt(1200)}},
		{"quote", `{"kind":"quote","ticker":"IE00B4L5Y983"}`, QuoteMethod{Ticker: "IE00B4L5Y983"}},
		{"cryptocurrency", `{"kind":"cryptocurrency","cryptocurrencyId":"bitcoin"}`, CryptoMethod{CryptoID: "bitcoin"}},
		{"interest", `{"kind":"interest"}`, InterestMethod{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMethod(json.RawMessage(tt.json))
			if err != nil {
				t.Fatalf("DecodeMethod() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("DecodeMethod() = %#v, want %#v", got, tt.want)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := DecodeMethod(json.RawMessage(`{"kind":"oracle"}`)); err == nil {
			t.Error("DecodeMethod() expected an error for unknown kind")
		}
	})
}
