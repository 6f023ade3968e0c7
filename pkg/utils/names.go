package utils

import (
	"strings"
)

// SplitName splits a display name into a first name and an optional last
// name. The first whitespace-separated token becomes the first name; the
// remainder, joined by single spaces, becomes the last name. Last is nil
// when the name holds a single token.
func SplitName(name string) (string, *string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields) == 1 {
		return fields[0], nil
	}
	last := strings.Join(fields[1:], " ")
	return fields[0], &last
}

// JoinName builds a display name from first and optional last name parts,
// omitting absent parts without leaving extra spaces.
func JoinName(first, last *string) string {
	var parts []string
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	return strings.Join(parts, " ")
}
