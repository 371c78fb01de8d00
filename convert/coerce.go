package convert

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// digitsRE matches one or more decimal digits and nothing else. Signs,
// whitespace, and decimal points disqualify a string value.
var digitsRE = regexp.MustCompile(`^[0-9]+$`)

// coerce returns the integer literal for v when v is a number or a
// digit-only string. The boolean is false when v is not eligible.
//
// Literals come back as json.Number so identifiers wider than
// float64's mantissa keep their exact digits through re-encoding.
func coerce(v any) (json.Number, bool) {
	switch val := v.(type) {
	case string:
		if !digitsRE.MatchString(val) {
			return "", false
		}
		return json.Number(trimLeadingZeros(val)), true
	case json.Number:
		return coerceNumber(val)
	case float64:
		// Values built without a UseNumber decoder.
		return json.Number(strconv.FormatInt(int64(val), 10)), true
	case int:
		return json.Number(strconv.Itoa(val)), true
	case int64:
		return json.Number(strconv.FormatInt(val, 10)), true
	default:
		return "", false
	}
}

// coerceNumber truncates a decoded number literal toward zero. Integer
// literals pass through untouched.
func coerceNumber(n json.Number) (json.Number, bool) {
	s := n.String()
	if digitsRE.MatchString(strings.TrimPrefix(s, "-")) {
		return n, true
	}
	f, err := n.Float64()
	if err != nil {
		return "", false
	}
	return json.Number(strconv.FormatInt(int64(f), 10)), true
}

// trimLeadingZeros normalizes a digit string into a valid JSON number
// literal ("007" becomes "7", "000" becomes "0").
func trimLeadingZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}
