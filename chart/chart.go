// Package chart converts aggregation buckets into generic labeled
// series points for bar and pie style rendering.
package chart

import (
	"hash/fnv"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluto-fi/plutotui/ledger"
)

// Point is one labeled value in a series. Labels are unique within a
// series; colliding buckets are merged.
type Point struct {
	Label string
	Value float64
	Color string
}

// palette is the fixed color set points are assigned from. Assignment
// is keyed by a hash of the label, so the same label always gets the
// same color across runs.
var palette = []string{
	"#ffd644", // amber
	"#22ba46", // green
	"#7d56f4", // violet
	"#e05951", // coral
	"#3b9dd4", // blue
	"#d29b1d", // ochre
	"#c25fbc", // magenta
	"#7f7d78", // gray
}

// ColorFor returns the palette color deterministically assigned to a
// label.
func ColorFor(label string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(label))
	return palette[h.Sum32()%uint32(len(palette))]
}

// Series converts buckets into points, preserving order of first
// occurrence. Buckets sharing a label merge their values into one
// point rather than emitting duplicates.
func Series(buckets []ledger.Bucket) []Point {
	points := make([]Point, 0, len(buckets))
	index := make(map[string]int, len(buckets))

	for _, b := range buckets {
		if i, ok := index[b.Key]; ok {
			points[i].Value += b.Total
			continue
		}

		index[b.Key] = len(points)
		points = append(points, Point{
			Label: b.Key,
			Value: b.Total,
			Color: ColorFor(b.Key),
		})
	}

	return points
}

// TopN returns the n largest points by value, descending. The input is
// not mutated.
func TopN(points []Point, n int) []Point {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// maxValue returns the largest point value, or 0 for an empty series.
func maxValue(points []Point) float64 {
	var max float64
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

// Bar renders one point as a colored horizontal bar scaled against the
// series maximum.
func Bar(p Point, seriesMax float64, width int) string {
	if width <= 0 || seriesMax <= 0 {
		return ""
	}

	filled := int(p.Value / seriesMax * float64(width))
	if filled > width {
		filled = width
	}
	if filled == 0 && p.Value > 0 {
		filled = 1
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
	return style.Render(strings.Repeat("█", filled))
}

// BarChart renders the whole series as aligned label/bar/value rows.
func BarChart(points []Point, width int, format func(float64) string) string {
	if len(points) == 0 {
		return ""
	}

	// cell width, not byte length, so multibyte labels stay aligned
	labelWidth := 0
	for _, p := range points {
		if w := lipgloss.Width(p.Label); w > labelWidth {
			labelWidth = w
		}
	}

	seriesMax := maxValue(points)
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().Width(labelWidth + 2).Render(p.Label))
		b.WriteString(Bar(p, seriesMax, width))
		b.WriteString(" ")
		b.WriteString(format(p.Value))
	}

	return b.String()
}
