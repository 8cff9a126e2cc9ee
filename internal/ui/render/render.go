// Package render formats analytics views for the terminal.
package render

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/analytics"
	"github.com/adamlaw669/Curio/internal/ui/theme"
)

// Renderer formats views. With Color unset it emits plain text, for
// pipes and tests.
type Renderer struct {
	Color bool
}

func (r Renderer) paint(s lipgloss.Style, text string) string {
	if !r.Color {
		return text
	}
	return s.Render(text)
}

// BandStyle is the cell style for a mastery band.
func BandStyle(b analytics.MasteryBand) lipgloss.Style {
	if c := bandColor(b); c != nil {
		return lipgloss.NewStyle().Foreground(theme.Text).Background(c)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim)
}

func bandColor(b analytics.MasteryBand) color.Color {
	switch b {
	case analytics.BandMastered:
		return theme.BandMastered
	case analytics.BandProficient:
		return theme.BandProficient
	case analytics.BandDeveloping:
		return theme.BandDeveloping
	case analytics.BandStruggling:
		return theme.BandStruggling
	}
	return nil
}

func (r Renderer) heading(text string) string {
	return r.paint(theme.Title, text)
}

func (r Renderer) dim(text string) string {
	return r.paint(theme.Subtitle, text)
}

func (r Renderer) field(b *strings.Builder, label string, value any) {
	fmt.Fprintf(b, "  %s %v\n", r.dim(pad(label+":", 16)), value)
}

// pad right-pads or truncates s to exactly n runes.
func pad(s string, n int) string {
	if l := utf8.RuneCountInString(s); l > n {
		if n <= 1 {
			return string([]rune(s)[:n])
		}
		return string([]rune(s)[:n-1]) + "…"
	} else if l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}

// Score formats a mastery score, showing "–" for no data.
func Score(v float64) string {
	if v == 0 {
		return "–"
	}
	return fmt.Sprintf("%.0f", v)
}

// Mastery formats a score from a strict lookup: "–" only when there is
// no data, so a real 0 prints as 0.
func Mastery(v float64, hasData bool) string {
	if !hasData {
		return "–"
	}
	return fmt.Sprintf("%.0f", v)
}
