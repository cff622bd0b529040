package tally

import (
	"strconv"
	"strings"
)

// ParseTarget converts target input into a target value. Leading digits are
// used ("33.5" is 33) and anything else, including blank, negative or
// overflowing input, means no target.
func ParseTarget(s string) int {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")

	end := strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if end == 0 {
		return 0
	}

	if end > 0 {
		s = s[:end]
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
