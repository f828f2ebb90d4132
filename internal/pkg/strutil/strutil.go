// Package strutil converts query string values.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 when it is not a number
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToBool parses s as a bool; ok is false when s is not a boolean literal
func ConvertToBool(s string) (value bool, ok bool) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}
