package money

import (
	"errors"
	"testing"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	if got.Base().Code() != "" || got.Quote().Code() != "" {
		t.Errorf("ExchangeRate{} = %v/%v, want empty currencies", got.Base(), got.Quote())
	}
	if _, err := got.Value(); err == nil {
		t.Errorf("ExchangeRate{}.Value() did not fail")
	}
	if s := got.String(); s != "/ ?" {
		t.Errorf("ExchangeRate{}.String() = %q, want \"/ ?\"", s)
	}
}

func TestNewExchRate(t *testing.T) {
	r := testRegistry()
	usd, _ := r.Lookup("USD")
	eur, _ := r.Lookup("EUR")

	t.Run("success", func(t *testing.T) {
		got, err := NewExchRate(usd, eur)
		if err != nil {
			t.Fatalf("NewExchRate(%v, %v) failed: %v", usd, eur, err)
		}
		if got.Base() != usd || got.Quote() != eur {
			t.Errorf("NewExchRate(%v, %v) = %v", usd, eur, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote Currency
		}{
			"base":  {Currency{}, eur},
			"quote": {usd, Currency{code: "XXX"}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewExchRate(tt.base, tt.quote)
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("NewExchRate(%v, %v) = %v, want %v", tt.base, tt.quote, err, ErrInvalidCurrency)
				}
			})
		}
	})
}

func TestRegistry_ExchRate(t *testing.T) {
	r := testRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote, want string
		}{
			{"USD", "EUR", "USD/EUR 1.176470588235294118"},
			{"EUR", "USD", "EUR/USD 0.85"},
			{"usd", "jpy", "USD/JPY 149.2537313432835821"},
			{"OMR", "USD", "OMR/USD 2.6"},
			{"USD", "USD", "USD/USD 1"},
		}
		for _, tt := range tests {
			got, err := r.ExchRate(tt.base, tt.quote)
			if err != nil {
				t.Errorf("ExchRate(%q, %q) failed: %v", tt.base, tt.quote, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ExchRate(%q, %q) = %q, want %q", tt.base, tt.quote, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := [][2]string{{"XYZ", "USD"}, {"USD", "XYZ"}, {"", "USD"}}
		for _, tt := range tests {
			_, err := r.ExchRate(tt[0], tt[1])
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("ExchRate(%q, %q) = %v, want %v", tt[0], tt[1], err, ErrUnknownCurrency)
			}
		}
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	r := testRegistry()
	rate, err := r.ExchRate("USD", "EUR")
	if err != nil {
		t.Fatal(err)
	}
	got := rate.Inv()
	if got.String() != "EUR/USD 0.85" {
		t.Errorf("%v.Inv() = %v, want EUR/USD 0.85", rate, got)
	}
	if got.Inv() != rate {
		t.Errorf("%v.Inv().Inv() = %v, want %v", rate, got.Inv(), rate)
	}
}

func TestExchangeRate_Conv(t *testing.T) {
	r := testRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote, amount string
			want                string
		}{
			{"USD", "EUR", "10", "11.765"},
			{"EUR", "USD", "10", "8.500"},
			{"USD", "JPY", "1", "149.3"},
			{"JPY", "OMR", "1000", "2.5769"},
		}
		for _, tt := range tests {
			rate, err := r.ExchRate(tt.base, tt.quote)
			if err != nil {
				t.Errorf("ExchRate(%q, %q) failed: %v", tt.base, tt.quote, err)
				continue
			}
			b := r.MustParseAmount(tt.base, tt.amount)
			got, err := rate.Conv(b)
			if err != nil {
				t.Errorf("%v.Conv(%q) failed: %v", rate, b, err)
				continue
			}
			if got.Curr().Code() != tt.quote || got.Decimal().String() != tt.want {
				t.Errorf("%v.Conv(%q) = %v %v, want %v %v", rate, b, got.Curr(), got.Decimal(), tt.quote, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		rate, err := r.ExchRate("USD", "EUR")
		if err != nil {
			t.Fatal(err)
		}
		b := r.MustParseAmount("EUR", "1")
		if rate.CanConv(b) {
			t.Errorf("%v.CanConv(%q) = true, want false", rate, b)
		}
		if _, err := rate.Conv(b); !errors.Is(err, errCurrencyMismatch) {
			t.Errorf("%v.Conv(%q) = %v, want %v", rate, b, err, errCurrencyMismatch)
		}
		if !rate.CanConv(r.MustParseAmount("USD", "1")) {
			t.Errorf("%v.CanConv(USD 1) = false, want true", rate)
		}
	})
}
