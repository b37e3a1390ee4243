package respond

import (
	"regexp"
	"strconv"
)

// Budget expressions take a few shapes: "under 30k", "below $25k",
// "$28000", "30 thousand", "40k". Forms with a "k" suffix or a
// "thousand" word multiply by 1000; everything else is taken as a
// literal dollar amount, so "under 30" means thirty dollars and will
// simply filter out everything.
var budgetPattern = regexp.MustCompile(`(?:under|below)\s+\$?(\d+)(k?)\b|\$(\d+)(k?)\b|(\d+)\s+thousand\b|(\d+)k\b`)

// ParseBudget extracts an inclusive upper price bound from the
// message. The second return value is false when no budget expression
// is present; callers then skip budget filtering entirely.
func ParseBudget(message string) (int, bool) {
	m := budgetPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}

	switch {
	case m[1] != "":
		n, _ := strconv.Atoi(m[1])
		if m[2] == "k" {
			n *= 1000
		}
		return n, true
	case m[3] != "":
		n, _ := strconv.Atoi(m[3])
		if m[4] == "k" {
			n *= 1000
		}
		return n, true
	case m[5] != "":
		n, _ := strconv.Atoi(m[5])
		return n * 1000, true
	case m[6] != "":
		n, _ := strconv.Atoi(m[6])
		return n * 1000, true
	}
	return 0, false
}
