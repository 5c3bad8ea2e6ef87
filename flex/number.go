package flex

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Uint64 is an unsigned integer that may arrive as a number or a numeric string.
type Uint64 uint64

// Int64 is a signed integer that may arrive as a number or a numeric string.
type Int64 int64

// Float64 is a floating point value that may arrive as a number or a numeric string.
type Float64 float64

// Decimal is an arbitrary precision value for raw token amounts, which exceed
// 64 bits for most ERC-20 balances.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps d.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// UnmarshalJSON accepts a number, a numeric string, or any scalar placeholder.
func (u *Uint64) UnmarshalJSON(data []byte) error {
	text, kind := scalarText(data)
	if kind == KindList {
		return &KindError{Target: "uint64", Kind: kind}
	}
	*u = Uint64(ParseUint(text))
	return nil
}

// UnmarshalJSON accepts a number, a numeric string, or any scalar placeholder.
func (i *Int64) UnmarshalJSON(data []byte) error {
	text, kind := scalarText(data)
	if kind == KindList {
		return &KindError{Target: "int64", Kind: kind}
	}
	*i = Int64(ParseInt(text))
	return nil
}

// UnmarshalJSON accepts a number, a numeric string, or any scalar placeholder.
func (f *Float64) UnmarshalJSON(data []byte) error {
	text, kind := scalarText(data)
	if kind == KindList {
		return &KindError{Target: "float64", Kind: kind}
	}
	*f = Float64(ParseFloat(text))
	return nil
}

// UnmarshalJSON accepts a number, a numeric string, or any scalar placeholder.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	text, kind := scalarText(data)
	if kind == KindList {
		return &KindError{Target: "decimal", Kind: kind}
	}
	d.Decimal = ParseDecimal(text)
	return nil
}

// ParseUint parses s as an unsigned integer. Fractional values are truncated;
// negative, out of range or malformed input yields 0.
func ParseUint(s string) uint64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}

	f := ParseFloat(s)
	if f < 0 || f >= math.MaxUint64 {
		return 0
	}
	return uint64(f)
}

// ParseInt parses s as a signed integer. Fractional values are truncated;
// out of range or malformed input yields 0.
func ParseInt(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}

	f := ParseFloat(s)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// ParseFloat parses s as a finite float. NaN, infinities and malformed input yield 0.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseDecimal parses s as an exact decimal, yielding zero on malformed input.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
