package render

import (
	"fmt"
	"strings"

	"github.com/adamlaw669/Curio/internal/analytics"
	"github.com/adamlaw669/Curio/internal/catalog"
)

const (
	nameWidth = 18
	cellWidth = 9
)

// Heatmap renders a cohort's mastery grid with a band legend.
func (r Renderer) Heatmap(h analytics.Heatmap, cohortName string) string {
	var b strings.Builder

	topic := h.Topic
	if topic == catalog.AllTopics {
		topic = "All topics"
	}
	fmt.Fprintf(&b, "%s  %s\n\n", r.heading(cohortName), r.dim(topic))

	if len(h.Rows) == 0 {
		b.WriteString("  No students in this cohort.\n")
		r.missing(&b, h.Missing)
		return b.String()
	}

	b.WriteString(pad("", nameWidth))
	for _, c := range h.Concepts {
		b.WriteString(" " + r.dim(pad(c.Name, cellWidth-1)))
	}
	b.WriteString("\n")

	for _, row := range h.Rows {
		b.WriteString(pad(row.Student.Name, nameWidth))
		for _, cell := range row.Cells {
			text := fmt.Sprintf("%*s ", cellWidth-2, Mastery(cell.Score, cell.HasData))
			b.WriteString(" " + r.paint(BandStyle(cell.Band), text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var legend []string
	for _, band := range analytics.Bands() {
		legend = append(legend, r.paint(BandStyle(band), " "+band.Label()+" "))
	}
	b.WriteString("  " + strings.Join(legend, " ") + "\n")
	r.missing(&b, h.Missing)
	return b.String()
}

func (r Renderer) missing(b *strings.Builder, ids []string) {
	if len(ids) > 0 {
		fmt.Fprintf(b, "\n  %s %s\n", r.dim("Unresolved members:"), strings.Join(ids, ", "))
	}
}
