// Package horario holds the pure schedule core: hour parsing and formatting,
// calendar helpers, weekly-base + override resolution and range aggregation.
// Everything works on explicit snapshots so callers own all the state.
package horario

import (
	"math"
	"strconv"
	"strings"
)

// ParseHours turns a user-entered hours value into a number. The comma
// decimal separator is accepted; anything unparseable counts as zero hours,
// never as an error.
func ParseHours(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// Round2 rounds to 2 decimals, half up on the scaled integer.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Floor(v*100+0.5) / 100
}

// FormatHours renders hours as a plain decimal with no fixed trailing zeros:
// "2", not "2.00"; "2.5", not "2.50". Non-finite values render as 0.
func FormatHours(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}
