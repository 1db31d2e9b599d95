package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██╗   ██╗ ██████╗ ██╗      ████████╗███████╗
 ██║   ██║██╔═══██╗██║      ╚══██╔══╝╚══███╔╝
 ██║   ██║██║   ██║██║         ██║     ███╔╝
 ╚██╗ ██╔╝██║   ██║██║         ██║    ███╔╝
  ╚████╔╝ ╚██████╔╝███████╗    ██║   ███████╗
   ╚═══╝   ╚═════╝ ╚══════╝    ╚═╝   ╚══════╝`

const arcadeTitleCompact = "V · O · L · T · Z"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderGreeting renders the personalized welcome line above the stats.
func renderGreeting(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderStatsBar renders the per-topic scores in a bordered box matching
// the content width.
func renderStatsBar(solar, wind, project, logins, cw int, compact bool) string {
	solarStyle := lipgloss.NewStyle().Foreground(theme.SolarOrange).Bold(true)
	windStyle := lipgloss.NewStyle().Foreground(theme.WindTeal).Bold(true)
	projectStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			solarStyle.Render(fmt.Sprintf("☀%d", solar)),
			windStyle.Render(fmt.Sprintf("⚡%d", wind)),
			projectStyle.Render(fmt.Sprintf("◆%d", project)),
			dimStyle.Render(fmt.Sprintf("#%d", logins)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			solarStyle.Render(fmt.Sprintf("☀ %d SOLAR", solar)),
			windStyle.Render(fmt.Sprintf("⚡ %d WIND", wind)),
			projectStyle.Render(fmt.Sprintf("◆ %d PROJECT", project)),
			dimStyle.Render(fmt.Sprintf("VISIT %d", logins)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.WindTeal).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderResetConfirm renders the reset confirmation prompt.
func renderResetConfirm(cw int) string {
	warn := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("Reset profile?")
	body := lipgloss.NewStyle().Foreground(theme.Text).
		Render("All answers and scores will be erased.")
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Y to confirm · N to cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Error).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(warn + "\n\n" + body + "\n" + hint)
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
