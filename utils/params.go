package utils

import (
	"fmt"
	"strconv"
)

// ParseUintParam parses a numeric id from a path or query parameter.
func ParseUintParam(raw string) (uint, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing id")
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(v), nil
}
