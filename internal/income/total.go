package income

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// totalPrefix matches the longest leading decimal literal, the way a
// browser's parseFloat reads "12.5abc" as 12.5.
var totalPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

// ParseTotal reads the amount typed into the total field. Leading
// whitespace is skipped and trailing garbage ignored. Text with no numeric
// prefix, including the empty string, yields NaN rather than an error.
func ParseTotal(text string) float64 {
	s := strings.TrimLeftFunc(text, isTotalSpace)
	m := totalPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}

	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// Out of range literals come back as ±Inf, matching parseFloat.
	return v
}

// isTotalSpace covers Unicode white space plus the byte order mark.
func isTotalSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
