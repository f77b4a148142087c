package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string to an integer.
// If the string is blank it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

// IsIntInRange checks if num is within [min, max]
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}
