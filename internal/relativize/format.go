package relativize

import (
	"strconv"
	"strings"
)

// formatFloat renders v in its shortest round-trip decimal form, keeping a
// trailing ".0" on integral values so 1 prints as "1.0". Infinities and NaN
// pass through as Go's native tokens.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}
