// Package format renders engagement numbers and timestamps for display.
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// CompactNumber renders n the way video cards show view counts: 950, 12K,
// 1.2M, 3B. Fractions are truncated to one digit, never rounded up.
func CompactNumber(n int64) string {
	if n < 0 {
		return "-" + CompactNumber(-n)
	}
	for _, unit := range compactUnits {
		if float64(n) >= unit.size {
			s := humanize.FtoaWithDigits(float64(n)/unit.size, 1)
			if strings.Contains(s, ".") {
				s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
			}
			return s + unit.suffix
		}
	}
	return humanize.Comma(n)
}

// TimeAgo renders t relative to now, e.g. "3 weeks ago". Times within a
// minute of now render as "just now".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if d := now.Sub(t); d >= 0 && d < time.Minute {
		return "just now"
	}
	return strings.TrimSpace(humanize.RelTime(t, now, "ago", "from now"))
}
