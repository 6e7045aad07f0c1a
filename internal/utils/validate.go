package utils

import "strings"

// TrimAll trims surrounding whitespace of every pointed-to string in place.
// Request structs are trimmed before their binding tags are checked.
func TrimAll(values ...*string) {
	for _, v := range values {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
}
