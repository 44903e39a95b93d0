/*
Package money implements monetary values in registered currencies.
It leverages the [decimal] package's capabilities for exact decimal
arithmetic and combines it with a [Registry] of currency descriptors.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - A registry of currencies with their symbols, scales and reference values
  - Arithmetic and comparison operations between amounts in any registered currencies
  - Exact-sum allocation of an amount by ratios
  - Conversion of amounts through reference values
  - Display with currency symbols and thousands separators, or a custom [Formatter]

# Representation

An [Amount] consists of a [Currency] snapshot and a decimal.Decimal value.
The value always carries one guard digit beyond the scale of the currency:
a US Dollar amount is stored with 3 digits after the decimal point.
The guard digit is dropped by rounding half to even whenever the amount is
read: by [Amount.String], [Amount.Display], [Amount.MinorUnits] and by every
comparison. Two amounts that differ only in their guard digit compare equal.

A [Currency] holds a code, a name, a symbol, a scale and a reference value:
the value of one unit of the currency in a common unit of account.
Currencies live in a [Registry]. [NewRegistry] returns a registry holding
the US Dollar; other currencies are added with [Registry.Register].
Registration is meant to happen while the application starts; amounts keep
the descriptor they were created with.

# Operations

Binary operations ([Amount.Add], [Amount.Sub], [Amount.Cmp] and the
comparison helpers) convert the second operand into the currency of the first
before computing. The result is always in the currency of the receiver.

[Amount.Convert] multiplies the amount by the reference value of its currency,
keeping 8 digits after the decimal point, and divides by the reference value
of the target currency, keeping the guard digit of the target currency.

[Amount.Allocate] splits an amount by ratios that sum to 1. Parts are
truncated to the currency scale, and the shortfall is handed out one minor unit
at a time, round-robin, so that the rounded parts sum to exactly the rounded
amount. [Amount.Split] does the same for equal parts.

# Errors

Errors are returned, never recovered internally, and wrap one of the package
sentinels: [ErrUnknownCurrency], [ErrUnknownField], [ErrNoDefaultCurrency],
[ErrInvalidRatioSum], [ErrFloatAmount], [ErrAmountOverflow] and
[ErrInvalidCurrency]. Use [errors.Is] to match them.
Functions prefixed with Must panic instead.
*/
package money
