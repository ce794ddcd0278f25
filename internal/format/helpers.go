package format

import (
	"fmt"
	"time"

	"dissolve/internal/display"
	"dissolve/internal/space"

	"github.com/dustin/go-humanize"
)

// Coord formats a coordinate or distance with four decimals.
func Coord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// PointHeader returns short column names for the five axes.
func PointHeader() []string {
	names := space.AxisNames()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = display.Axis(n)
	}
	return out
}

// PointCells returns the five coordinates of p as table cells.
func PointCells(p space.Point) []any {
	v := p.Vector()
	out := make([]any, len(v))
	for i, c := range v {
		out[i] = Coord(c)
	}
	return out
}

// Ellipsis shortens s to maxLen runes, ending in "..." when it cuts.
func Ellipsis(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// Ago renders t relative to now, e.g. "3 minutes ago". The zero time is "-".
func Ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// Count renders n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
