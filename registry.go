package money

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-kit/log"
	"github.com/govalues/decimal"
)

// Registry is a table of currency descriptors shared by the amounts created
// from it. It also holds an optional default currency and an optional
// [Formatter] used by [Amount.Display].
//
// Registry is safe for concurrent use: lookups take a read lock and
// registration takes the write lock. Applications are still expected to
// finish registering currencies before amounts are in wide use, since amounts
// snapshot their currency at construction.
type Registry struct {
	mu     sync.RWMutex
	currs  map[string]Currency
	def    string
	fmtr   Formatter
	logger log.Logger
}

// Option configures a [Registry].
type Option func(*Registry)

// WithLogger sets the logger that receives registry mutation events.
// A nil logger discards them.
func WithLogger(logger log.Logger) Option {
	return func(r *Registry) {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		r.logger = logger
	}
}

// WithFormatter installs f as the registry formatter.
// See also method [Registry.SetFormatter].
func WithFormatter(f Formatter) Option {
	return func(r *Registry) {
		r.fmtr = f
	}
}

// NewRegistry returns a registry holding the built-in US Dollar
// (code "USD", symbol "$", scale 2, reference value 1.00000000).
// No default currency is set.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		currs:  map[string]Currency{},
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	usd := Currency{
		code:   "USD",
		name:   "US Dollar",
		symbol: "$",
		scale:  2,
		ref:    decimal.MustNew(100_000_000, 8),
	}
	r.currs[usd.code] = usd
	return r
}

// Register inserts the descriptor for code, replacing any existing one.
// The code is stored in upper case.
//
// Register returns an error if:
//   - the code is empty;
//   - the precision is negative or greater than [MaxScale];
//   - the reference value is not positive.
func (r *Registry) Register(code, name, symbol string, precision int, reference decimal.Decimal) error {
	c, err := newCurrency(code, name, symbol, precision, reference)
	if err != nil {
		return fmt.Errorf("registering %q: %w", code, err)
	}
	r.mu.Lock()
	_, replaced := r.currs[c.code]
	r.currs[c.code] = c
	r.mu.Unlock()
	r.logger.Log("msg", "currency registered", "code", c.code, "precision", c.scale, "reference", c.ref, "replaced", replaced)
	return nil
}

// MustRegister is like [Registry.Register] but panics if the descriptor is invalid.
// It simplifies registration of currencies known at compile time.
func (r *Registry) MustRegister(code, name, symbol string, precision int, reference string) {
	d, err := decimal.Parse(reference)
	if err == nil {
		err = r.Register(code, name, symbol, precision, d)
	}
	if err != nil {
		panic(fmt.Sprintf("MustRegister(%q, %q, %q, %v, %q) failed: %v", code, name, symbol, precision, reference, err))
	}
}

// Lookup returns the descriptor registered under code.
// Codes are matched case-insensitively.
//
// Lookup returns [ErrUnknownCurrency] if the code is not registered.
func (r *Registry) Lookup(code string) (Currency, error) {
	r.mu.RLock()
	c, ok := r.currs[normCode(code)]
	r.mu.RUnlock()
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// LookupField returns a single field of the descriptor registered under code,
// rendered as a string. Valid fields are [FieldName], [FieldSymbol],
// [FieldPrecision] and [FieldReference].
//
// LookupField returns [ErrUnknownCurrency] or [ErrUnknownField].
func (r *Registry) LookupField(code, field string) (string, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return "", err
	}
	return c.field(field)
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	codes := make([]string, 0, len(r.currs))
	for code := range r.currs {
		codes = append(codes, code)
	}
	r.mu.RUnlock()
	sort.Strings(codes)
	return codes
}

// SetDefault records code as the currency used when an amount is created
// without one.
//
// SetDefault returns [ErrUnknownCurrency] if the code is not registered.
func (r *Registry) SetDefault(code string) error {
	code = normCode(code)
	r.mu.Lock()
	_, ok := r.currs[code]
	if ok {
		r.def = code
	}
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("setting default currency: %w: %q", ErrUnknownCurrency, code)
	}
	r.logger.Log("msg", "default currency set", "code", code)
	return nil
}

// Default returns the default currency.
//
// Default returns [ErrNoDefaultCurrency] if no default has been set.
func (r *Registry) Default() (Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.def == "" {
		return Currency{}, ErrNoDefaultCurrency
	}
	return r.currs[r.def], nil
}

// SetFormatter installs f as the formatter used by [Amount.Display] for every
// amount created from this registry, replacing any previous one.
// A nil formatter restores the built-in rendering.
func (r *Registry) SetFormatter(f Formatter) {
	r.mu.Lock()
	r.fmtr = f
	r.mu.Unlock()
	r.logger.Log("msg", "formatter installed", "custom", f != nil)
}

func (r *Registry) formatter() Formatter {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fmtr
}

// resolve returns the currency for code, or the default currency if code is empty.
func (r *Registry) resolve(code string) (Currency, error) {
	if normCode(code) == "" {
		return r.Default()
	}
	return r.Lookup(code)
}
