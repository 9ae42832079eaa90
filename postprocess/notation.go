package postprocess

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ToScientific renders the value's base value in scientific notation with
// the given number of significant digits: one integer digit, precision-1
// decimal places, and a sign-explicit exponent padded to two digits. A zero
// base value renders as "0.00000E+00" (at precision 6). Non-numeric values
// return their original string.
//
// The exponent is chosen with float64 log10 while the mantissa digits come
// from the decimal value. For extreme magnitudes the float log10 can be off
// by one; this is the established behavior and is pinned by tests.
func ToScientific(v ParsedValue, precision int) string {
	if !v.IsNumeric() {
		return v.Original
	}
	if precision < 1 {
		precision = 1
	}

	base := v.BaseValue()
	if base.IsZero() {
		return decimal.Zero.StringFixed(int32(precision-1)) + "E+00" + v.Unit
	}

	f, _ := base.Abs().Float64()
	exp := int(math.Floor(math.Log10(f)))
	mantissa := base.Shift(int32(-exp))

	return mantissa.StringFixed(int32(precision-1)) + fmt.Sprintf("E%+03d", exp) + v.Unit
}

// ToEngineering renders the value's base value in engineering notation: the
// exponent is forced down to a multiple of three so the mantissa falls in
// roughly [1, 1000), and the decimal places are precision minus the
// mantissa's integer digits, floored at zero. Zero renders analogously to
// ToScientific; non-numeric values return their original string.
func ToEngineering(v ParsedValue, precision int) string {
	if !v.IsNumeric() {
		return v.Original
	}
	if precision < 1 {
		precision = 1
	}

	base := v.BaseValue()
	if base.IsZero() {
		return decimal.Zero.StringFixed(int32(precision-1)) + "E+00" + v.Unit
	}

	f, _ := base.Abs().Float64()
	exp := int(math.Floor(math.Log10(f)))
	exp -= ((exp % 3) + 3) % 3 // nearest lower multiple of 3
	mantissa := base.Shift(int32(-exp))

	intDigits := len(mantissa.Abs().Truncate(0).String())
	decimals := precision - intDigits
	if decimals < 0 {
		decimals = 0
	}

	return mantissa.StringFixed(int32(decimals)) + fmt.Sprintf("E%+03d", exp) + v.Unit
}

// FormatDecimal renders a decimal in plain fixed-point notation, never
// scientific. With precision <= 0 the full representation is used; otherwise
// the decimal places are derived from the value's order of magnitude so the
// result carries precision significant digits. Trailing fractional zeros are
// stripped either way. Zero renders as "0".
func FormatDecimal(d decimal.Decimal, precision int) string {
	if d.IsZero() {
		return "0"
	}
	if precision <= 0 {
		return stripTrailingZeros(d.String())
	}

	f, _ := d.Abs().Float64()
	decimals := precision - int(math.Floor(math.Log10(f))) - 1
	if decimals < 0 {
		decimals = 0
	}

	return stripTrailingZeros(d.StringFixed(int32(decimals)))
}

func stripTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
