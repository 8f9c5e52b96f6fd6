package utils

import "strings"

// SplitTrimmed splits a comma-separated value, trims whitespace and
// drops empty entries.
func SplitTrimmed(value string) []string {
	var result []string

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}

	return result
}
