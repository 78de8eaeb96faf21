package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPattern    = regexp.MustCompile(`\d+(\.\d+)?`)
	leadingIntPattern = regexp.MustCompile(`\d+`)
)

// ExtractDecimal returns the first decimal number found in a free-form
// string ("1.5 tỷ" -> 1.5). Malformed or missing numbers yield 0; this
// never fails.
func ExtractDecimal(s string) float64 {
	match := decimalPattern.FindString(s)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// ExtractLeadingInt returns the value of the first run of digits in a
// free-form string, ignoring any unit suffix ("40 m²" -> 40). If the
// whole string already parses as a number it is used directly.
func ExtractLeadingInt(s string) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}
	match := leadingIntPattern.FindString(s)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}
