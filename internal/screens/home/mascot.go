package home

import (
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/ui/theme"
)

// MascotVariant selects which mood the mascot is drawn in.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotCelebrating
	MascotCharged
)

const mascotIdleArt = `  ╭─────────╮
  │  ◉   ◉  │
  │    ▽    │
  │   ⚡⚡   │
  ╰─────────╯`

const mascotCelebratingArt = ` \ ╭─────────╮ /
   │  ★   ★  │
   │    ▽    │
   │   ⚡⚡   │
 / ╰─────────╯ \`

const mascotChargedArt = `  ╭─────────╮
  │  ◉   ◉  │⚡
  │    ▽    │
 ⚡│   ⚡⚡   │
  ╰─────────╯`

// RenderMascot returns the styled mascot for the given variant.
func RenderMascot(variant MascotVariant) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary)

	switch variant {
	case MascotCelebrating:
		return style.Render(mascotCelebratingArt)
	case MascotCharged:
		return style.Render(mascotChargedArt)
	default:
		return style.Render(mascotIdleArt)
	}
}
