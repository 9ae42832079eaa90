package postprocess

import (
	"strings"

	"github.com/tsawler/ocrlayout/model"
)

// ProcessTSV applies the configured transforms to every cell of a TSV grid
// and returns the display grid. Per cell: parse, optional threshold
// replacement, optional unit conversion, then notation or fixed-point
// formatting. When SplitValueUnit is set, every row gains one trailing
// column holding the row-level unit label (the target prefix when unit
// conversion is enabled, empty otherwise) and numeric cells display the bare
// number. Special and Unparsed cells always display their original string.
func ProcessTSV(tsvText string, s Settings) string {
	lines := strings.Split(strings.TrimSpace(tsvText), "\n")

	unitLabel := ""
	if s.ApplyUnitConversion {
		unitLabel = s.TargetUnitPrefix
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		cells := strings.Split(line, "\t")
		processed := make([]string, 0, len(cells)+1)

		for _, cell := range cells {
			v := ParseCell(cell)
			if s.ApplyThreshold {
				v = ApplyThreshold(v, s.ThresholdValue, s.ThresholdReplaceWith)
			}
			if s.ApplyUnitConversion {
				v = ConvertUnit(v, s.TargetUnitPrefix)
			}
			processed = append(processed, displayCell(v, s))
		}

		if s.SplitValueUnit {
			processed = append(processed, unitLabel)
		}
		out[i] = strings.Join(processed, "\t")
	}

	return strings.Join(out, "\n")
}

// displayCell renders one transformed value per the settings.
func displayCell(v ParsedValue, s Settings) string {
	if !v.IsNumeric() {
		return v.Original
	}

	if s.ApplyNotationConversion {
		switch s.NotationStyle {
		case NotationScientific:
			return ToScientific(v, s.Precision)
		case NotationEngineering:
			return ToEngineering(v, s.Precision)
		}
		// NotationNone falls through to fixed-point.
	}

	num := FormatDecimal(v.Magnitude, s.Precision)
	if s.SplitValueUnit {
		return num
	}
	return num + v.Prefix + v.Unit
}

// SelectForCopy is the boundary-level copy-strategy selector. It operates on
// a grid that ProcessTSV already split into value columns plus a trailing
// unit column: value_only drops the trailing column of every row, unit_only
// keeps only it, and all returns the grid unchanged. It is intentionally not
// part of ProcessTSV; the clipboard consumer applies it.
func SelectForCopy(tsvText string, strategy CopyStrategy) string {
	if strategy == CopyAll || strategy == "" {
		return tsvText
	}

	grid := model.GridFromTSV(tsvText)
	selected := make(model.Grid, len(grid))
	for i, row := range grid {
		if len(row) == 0 {
			selected[i] = row
			continue
		}
		switch strategy {
		case CopyValueOnly:
			selected[i] = row[:len(row)-1]
		case CopyUnitOnly:
			selected[i] = row[len(row)-1:]
		default:
			selected[i] = row
		}
	}
	return selected.ToTSV()
}
