package postprocess

import (
	"encoding/json"
	"fmt"
	"os"
)

// Notation styles for Settings.NotationStyle.
const (
	NotationNone        = "none"
	NotationScientific  = "scientific"
	NotationEngineering = "engineering"
)

// CopyStrategy selects which part of a value/unit-split grid a consumer
// copies out.
type CopyStrategy string

// Copy strategies for Settings.CopyStrategy.
const (
	CopyAll       CopyStrategy = "all"
	CopyValueOnly CopyStrategy = "value_only"
	CopyUnitOnly  CopyStrategy = "unit_only"
)

// ParseCopyStrategy converts a string to a CopyStrategy, rejecting unknown
// values.
func ParseCopyStrategy(s string) (CopyStrategy, error) {
	switch CopyStrategy(s) {
	case CopyAll, CopyValueOnly, CopyUnitOnly:
		return CopyStrategy(s), nil
	}
	return "", fmt.Errorf("unknown copy strategy %q", s)
}

// Settings configures the TSV post-processing pipeline. It is the persisted
// JSON settings object; the core never mutates it.
type Settings struct {
	ApplyThreshold       bool   `json:"apply_threshold"`
	ThresholdValue       string `json:"threshold_value"`
	ThresholdReplaceWith string `json:"threshold_replace_with"`

	ApplyUnitConversion bool   `json:"apply_unit_conversion"`
	TargetUnitPrefix    string `json:"target_unit_prefix"`

	ApplyNotationConversion bool   `json:"apply_notation_conversion"`
	NotationStyle           string `json:"notation_style"`

	SplitValueUnit bool         `json:"split_value_unit"`
	CopyStrategy   CopyStrategy `json:"copy_strategy"`

	// Precision is the significant-digit count used by the formatters,
	// valid range 1..15.
	Precision int `json:"precision"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		ThresholdValue:       "0",
		ThresholdReplaceWith: "0",
		NotationStyle:        NotationNone,
		CopyStrategy:         CopyAll,
		Precision:            6,
	}
}

// LoadSettings reads settings from a JSON file. It never fails outward: a
// missing or corrupt file, or an out-of-range precision, resolves to
// DefaultSettings.
func LoadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings()
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	if s.Precision < 1 || s.Precision > 15 {
		s.Precision = DefaultSettings().Precision
	}
	return s
}

// SaveSettings writes settings to a JSON file.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
