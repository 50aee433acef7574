package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt converts string to int, returning an error for anything that is not a base-10 integer
func ParseInt(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty value")
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}

	return result, nil
}
