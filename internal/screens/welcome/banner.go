package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗ ██████╗ ██╗      ████████╗███████╗
 ██║   ██║██╔═══██╗██║      ╚══██╔══╝╚══███╔╝
 ██║   ██║██║   ██║██║         ██║     ███╔╝
 ╚██╗ ██╔╝██║   ██║██║         ██║    ███╔╝
  ╚████╔╝ ╚██████╔╝███████╗    ██║   ███████╗
   ╚═══╝   ╚═════╝ ╚══════╝    ╚═╝   ╚══════╝`

const bannerCompact = "V O L T Z"

// RenderBanner returns the VOLTZ banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
