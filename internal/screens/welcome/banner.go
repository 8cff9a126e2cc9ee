package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/adamlaw669/Curio/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗   ██╗██████╗ ██╗ ██████╗
 ██╔════╝██║   ██║██╔══██╗██║██╔═══██╗
 ██║     ██║   ██║██████╔╝██║██║   ██║
 ██║     ██║   ██║██╔══██╗██║██║   ██║
 ╚██████╗╚██████╔╝██║  ██║██║╚██████╔╝
  ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝ ╚═════╝`

const bannerCompact = "C U R I O"

// RenderBanner returns the Curio banner in the primary color, or a
// compact one for terminals narrower than 42 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < 42 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
