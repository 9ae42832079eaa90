// Package postprocess parses and transforms table cell values that encode
// physical quantities: a number, an optional engineering prefix (f, p, n, u,
// m, k, M, G), and an optional unit.
//
// # Parsing
//
// [ParseCell] turns a cell string into a [ParsedValue], a tagged union of
// three kinds:
//
//   - [KindSpecial] - the literal placeholder "-"
//   - [KindNumeric] - magnitude (arbitrary-precision decimal), prefix, unit
//   - [KindUnparsed] - anything else, preserved verbatim
//
// Every transform is total: Special and Unparsed values pass through all
// transforms unchanged, so a failed parse can never corrupt a cell.
//
// # Transforms
//
// [ApplyThreshold] replaces values whose base value is strictly below a
// threshold, [ConvertUnit] rescales to a target prefix, [ToScientific] and
// [ToEngineering] render notation strings, [SciToPrefix] picks the best
// prefix for a value, and [FormatDecimal] renders plain fixed-point.
//
// Magnitudes use decimal arithmetic (github.com/shopspring/decimal); prefix
// rescaling shifts the decimal point exactly, so repeated conversions do not
// accumulate rounding error. Exponent selection in the notation renderers
// intentionally uses float64 log10, matching the established behavior.
//
// # Pipeline
//
// [ProcessTSV] applies the transforms across every cell of a TSV grid
// according to a [Settings] value, which round-trips as the persisted JSON
// settings object. [LoadSettings] never fails outward: a missing or corrupt
// file yields [DefaultSettings].
package postprocess
