package money

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/govalues/decimal"
)

// testRegistry returns a registry with a handful of currencies of different scales.
func testRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("EUR", "Euro", "€", 2, "0.85000000")
	r.MustRegister("JPY", "Japanese Yen", "¥", 0, "0.00670000")
	r.MustRegister("OMR", "Omani Rial", "ر.ع.", 3, "2.60000000")
	return r
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	c, err := r.Lookup("USD")
	if err != nil {
		t.Fatalf("Lookup(\"USD\") failed: %v", err)
	}
	if c.Code() != "USD" || c.Name() != "US Dollar" || c.Symbol() != "$" || c.Scale() != 2 {
		t.Errorf("Lookup(\"USD\") = %v %q %q %v, want USD \"US Dollar\" \"$\" 2", c.Code(), c.Name(), c.Symbol(), c.Scale())
	}
	if got, want := c.Reference().String(), "1.00000000"; got != want {
		t.Errorf("USD reference = %v, want %v", got, want)
	}
	if _, err := r.Default(); !errors.Is(err, ErrNoDefaultCurrency) {
		t.Errorf("Default() = %v, want %v", err, ErrNoDefaultCurrency)
	}
	if got := r.Codes(); len(got) != 1 || got[0] != "USD" {
		t.Errorf("Codes() = %v, want [USD]", got)
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code      string
			precision int
			ref       string
			wantCode  string
		}{
			{"EUR", 2, "0.85", "EUR"},
			{"jpy", 0, "0.0067", "JPY"},
			{" btc ", 8, "60000", "BTC"},
			{"OMR", 3, "2.6", "OMR"},
			{"XAU", MaxScale, "2300", "XAU"},
		}
		for _, tt := range tests {
			r := NewRegistry()
			err := r.Register(tt.code, "name", "sym", tt.precision, decimal.MustParse(tt.ref))
			if err != nil {
				t.Errorf("Register(%q, %v, %v) failed: %v", tt.code, tt.precision, tt.ref, err)
				continue
			}
			c, err := r.Lookup(tt.wantCode)
			if err != nil {
				t.Errorf("Lookup(%q) failed: %v", tt.wantCode, err)
				continue
			}
			if c.Code() != tt.wantCode || c.Scale() != tt.precision {
				t.Errorf("Lookup(%q) = %v/%v, want %v/%v", tt.wantCode, c.Code(), c.Scale(), tt.wantCode, tt.precision)
			}
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister("USD", "Dollar", "US$", 3, "1.1")
		c, err := r.Lookup("USD")
		if err != nil {
			t.Fatalf("Lookup(\"USD\") failed: %v", err)
		}
		if c.Symbol() != "US$" || c.Scale() != 3 || c.Reference().String() != "1.1" {
			t.Errorf("Lookup(\"USD\") = %q %v %v, want \"US$\" 3 1.1", c.Symbol(), c.Scale(), c.Reference())
		}
		if got := len(r.Codes()); got != 1 {
			t.Errorf("len(Codes()) = %v, want 1", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			code      string
			precision int
			ref       string
		}{
			"empty code":  {"", 2, "1"},
			"blank code":  {"  ", 2, "1"},
			"precision 1": {"ABC", -1, "1"},
			"precision 2": {"ABC", MaxScale + 1, "1"},
			"reference 1": {"ABC", 2, "0"},
			"reference 2": {"ABC", 2, "-1"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				r := NewRegistry()
				err := r.Register(tt.code, "", "", tt.precision, decimal.MustParse(tt.ref))
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("Register(%q, %v, %v) = %v, want %v", tt.code, tt.precision, tt.ref, err, ErrInvalidCurrency)
				}
				if got := len(r.Codes()); got != 1 {
					t.Errorf("failed Register changed the registry: %v", r.Codes())
				}
			})
		}
	})
}

func TestRegistry_MustRegister(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustRegister(\"ABC\", \"\", \"\", 2, \"abc\") did not panic")
			}
		}()
		NewRegistry().MustRegister("ABC", "", "", 2, "abc")
	})
}

func TestRegistry_Lookup(t *testing.T) {
	r := testRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want string
		}{
			{"USD", "USD"},
			{"usd", "USD"},
			{"Eur", "EUR"},
			{"JPY", "JPY"},
			{"omr", "OMR"},
		}
		for _, tt := range tests {
			got, err := r.Lookup(tt.code)
			if err != nil {
				t.Errorf("Lookup(%q) failed: %v", tt.code, err)
				continue
			}
			if got.Code() != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "XXX", "US", "BTC", "$"}
		for _, tt := range tests {
			_, err := r.Lookup(tt)
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("Lookup(%q) = %v, want %v", tt, err, ErrUnknownCurrency)
			}
		}
	})
}

func TestRegistry_LookupField(t *testing.T) {
	r := testRegistry()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code, field, want string
		}{
			{"USD", FieldName, "US Dollar"},
			{"USD", FieldSymbol, "$"},
			{"USD", FieldPrecision, "2"},
			{"USD", FieldReference, "1.00000000"},
			{"JPY", FieldPrecision, "0"},
			{"EUR", "SYMBOL", "€"},
			{"OMR", "reference", "2.60000000"},
		}
		for _, tt := range tests {
			got, err := r.LookupField(tt.code, tt.field)
			if err != nil {
				t.Errorf("LookupField(%q, %q) failed: %v", tt.code, tt.field, err)
				continue
			}
			if got != tt.want {
				t.Errorf("LookupField(%q, %q) = %q, want %q", tt.code, tt.field, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			code, field string
			want        error
		}{
			{"XYZ", FieldName, ErrUnknownCurrency},
			{"USD", "code", ErrUnknownField},
			{"USD", "", ErrUnknownField},
			{"USD", "scale", ErrUnknownField},
		}
		for _, tt := range tests {
			_, err := r.LookupField(tt.code, tt.field)
			if !errors.Is(err, tt.want) {
				t.Errorf("LookupField(%q, %q) = %v, want %v", tt.code, tt.field, err, tt.want)
			}
		}
	})
}

func TestRegistry_SetDefault(t *testing.T) {
	r := testRegistry()
	if err := r.SetDefault("XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("SetDefault(\"XYZ\") = %v, want %v", err, ErrUnknownCurrency)
	}
	if _, err := r.Default(); !errors.Is(err, ErrNoDefaultCurrency) {
		t.Errorf("Default() after failed SetDefault = %v, want %v", err, ErrNoDefaultCurrency)
	}
	if err := r.SetDefault("eur"); err != nil {
		t.Fatalf("SetDefault(\"eur\") failed: %v", err)
	}
	c, err := r.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if c.Code() != "EUR" {
		t.Errorf("Default() = %v, want EUR", c)
	}
}

func TestRegistry_Codes(t *testing.T) {
	got := strings.Join(testRegistry().Codes(), ",")
	want := "EUR,JPY,OMR,USD"
	if got != want {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestRegistry_Logger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(WithLogger(log.NewLogfmtLogger(&buf)))
	r.MustRegister("EUR", "Euro", "€", 2, "0.85")
	if err := r.SetDefault("EUR"); err != nil {
		t.Fatalf("SetDefault(\"EUR\") failed: %v", err)
	}
	r.SetFormatter(nil)

	got := buf.String()
	for _, want := range []string{
		`msg="currency registered" code=EUR precision=2 reference=0.85 replaced=false`,
		`msg="default currency set" code=EUR`,
		`msg="formatter installed" custom=false`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
}

func TestRegistry_NilLogger(t *testing.T) {
	r := NewRegistry(WithLogger(nil))
	r.MustRegister("EUR", "Euro", "€", 2, "0.85")
	if err := r.SetDefault("EUR"); err != nil {
		t.Fatalf("SetDefault(\"EUR\") failed: %v", err)
	}
	r.SetFormatter(nil)
	if d, err := r.Default(); err != nil || d.Code() != "EUR" {
		t.Errorf("Default() = %v, %v, want EUR", d.Code(), err)
	}
}

func TestRegistry_Concurrency(t *testing.T) {
	r := testRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			code := fmt.Sprintf("C%02d", i)
			r.MustRegister(code, code, code, i%4, "1.5")
		}()
		go func() {
			defer wg.Done()
			if _, err := r.ParseAmount("USD", "1.00"); err != nil {
				t.Errorf("ParseAmount(\"USD\", \"1.00\") failed: %v", err)
			}
		}()
	}
	wg.Wait()
	if got := len(r.Codes()); got != 12 {
		t.Errorf("len(Codes()) = %v, want 12", got)
	}
}

func TestCurrency_Format(t *testing.T) {
	r := testRegistry()
	usd, _ := r.Lookup("USD")
	jpy, _ := r.Lookup("JPY")
	tests := []struct {
		curr         Currency
		format, want string
	}{
		// %T verb
		{usd, "%T", "money.Currency"},
		// %q verb
		{usd, "%q", "\"USD\""},
		{usd, "%7q", "  \"USD\""},
		{usd, "%-7q", "\"USD\"  "},
		// %s verb
		{jpy, "%s", "JPY"},
		{jpy, "%5s", "  JPY"},
		{jpy, "%-5s", "JPY  "},
		// %v verb
		{jpy, "%v", "JPY"},
		// %c verb
		{usd, "%c", "USD"},
		{usd, "%5c", "  USD"},
		// wrong verbs
		{usd, "%b", "%!b(money.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}
