package display

import (
	"fmt"
	"time"
)

// FormatDuration returns a short human-readable duration (e.g. "340ms",
// "12.5s", "2m03s").
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int64(d / time.Minute)
	s := int64((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm%02ds", m, s)
}

// FormatCount returns a compact node count for log lines (e.g. "412",
// "8.5k", "1.2M").
func FormatCount(n int) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 1000000:
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
}
