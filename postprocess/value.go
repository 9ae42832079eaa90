package postprocess

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discriminates the three states of a parsed cell value.
type Kind int

const (
	// KindUnparsed marks a cell that did not parse as a quantity. The
	// original string is preserved verbatim.
	KindUnparsed Kind = iota
	// KindSpecial marks the literal placeholder "-".
	KindSpecial
	// KindNumeric marks a parsed quantity with magnitude, prefix, and unit.
	KindNumeric
)

// prefixPower maps engineering prefixes to their power of ten.
var prefixPower = map[string]int32{
	"f": -15, "p": -12, "n": -9, "u": -6, "m": -3,
	"": 0,
	"k": 3, "M": 6, "G": 9,
}

// powerPrefix is the reverse lookup of prefixPower.
var powerPrefix = func() map[int32]string {
	m := make(map[int32]string, len(prefixPower))
	for p, pow := range prefixPower {
		m[pow] = p
	}
	return m
}()

// ParsedValue is the result of parsing one cell. Exactly one kind applies;
// Magnitude, Prefix, and Unit are meaningful only for KindNumeric.
type ParsedValue struct {
	Kind     Kind
	Original string

	Magnitude decimal.Decimal
	Prefix    string
	Unit      string
}

// IsNumeric reports whether the value carries a parsed quantity.
func (v ParsedValue) IsNumeric() bool {
	return v.Kind == KindNumeric
}

// IsSpecial reports whether the value is the "-" placeholder.
func (v ParsedValue) IsSpecial() bool {
	return v.Kind == KindSpecial
}

// BaseValue returns the magnitude rescaled to prefix power zero. Non-numeric
// values yield zero.
func (v ParsedValue) BaseValue() decimal.Decimal {
	if !v.IsNumeric() {
		return decimal.Zero
	}
	return v.Magnitude.Shift(prefixPower[v.Prefix])
}

// Format renders the value back into a string: magnitude followed by prefix
// and unit for numeric values, the original string otherwise.
func (v ParsedValue) Format() string {
	if !v.IsNumeric() {
		return v.Original
	}
	return v.Magnitude.String() + v.Prefix + v.Unit
}

// cellRe captures a signed number, an optional scientific exponent, an
// optional engineering prefix, and optional trailing unit letters.
// Examples: "123", "12.3k", "1.2e-3", "5n", "-4uV", "1.2kOhm".
var cellRe = regexp.MustCompile(`^\s*(-?[0-9.]+)\s*(e[+-]?[0-9]+)?\s*([fpnumkMG])?([a-zA-Z]*)\s*$`)

// ParseCell parses a single cell string. The literal "-" is Special; a
// regex mismatch or decimal conversion failure yields Unparsed with the
// trimmed original preserved.
func ParseCell(cell string) ParsedValue {
	s := strings.TrimSpace(cell)
	if s == "-" {
		return ParsedValue{Kind: KindSpecial, Original: s}
	}

	m := cellRe.FindStringSubmatch(s)
	if m == nil {
		return ParsedValue{Kind: KindUnparsed, Original: s}
	}

	magnitude, err := decimal.NewFromString(m[1] + m[2])
	if err != nil {
		return ParsedValue{Kind: KindUnparsed, Original: s}
	}

	return ParsedValue{
		Kind:      KindNumeric,
		Original:  s,
		Magnitude: magnitude,
		Prefix:    m[3],
		Unit:      m[4],
	}
}
