package postprocess

import (
	"math"

	"github.com/shopspring/decimal"
)

// ApplyThreshold replaces the value with ParseCell(replaceStr) when its base
// value is strictly below the threshold's base value. Equal values are kept.
// The replacement can itself be a special marker, a number, or plain text.
// Non-numeric values and unparsable thresholds leave the input unchanged.
func ApplyThreshold(v ParsedValue, thresholdStr, replaceStr string) ParsedValue {
	if !v.IsNumeric() {
		return v
	}

	threshold := ParseCell(thresholdStr)
	if !threshold.IsNumeric() {
		return v
	}

	if v.BaseValue().Cmp(threshold.BaseValue()) < 0 {
		return ParseCell(replaceStr)
	}
	return v
}

// ConvertUnit rescales the magnitude to the target engineering prefix. The
// unit string is untouched. Unknown prefixes and non-numeric values leave
// the input unchanged. Rescaling shifts the decimal point exactly.
func ConvertUnit(v ParsedValue, targetPrefix string) ParsedValue {
	if !v.IsNumeric() {
		return v
	}

	power, ok := prefixPower[targetPrefix]
	if !ok {
		return v
	}

	v.Magnitude = v.BaseValue().Shift(-power)
	v.Prefix = targetPrefix
	return v
}

// SciToPrefix converts the value to the engineering prefix whose power is
// the multiple of three nearest to the value's order of magnitude, clamped
// to the f..G range. Zero collapses to the bare base unit.
func SciToPrefix(v ParsedValue) ParsedValue {
	if !v.IsNumeric() {
		return v
	}

	base := v.BaseValue()
	if base.IsZero() {
		v.Magnitude = decimal.Zero
		v.Prefix = ""
		return v
	}

	f, _ := base.Abs().Float64()
	power := int32(math.Round(math.Log10(f)/3)) * 3
	if power > 9 {
		power = 9
	}
	if power < -15 {
		power = -15
	}

	prefix, ok := powerPrefix[power]
	if !ok {
		return v
	}
	return ConvertUnit(v, prefix)
}
