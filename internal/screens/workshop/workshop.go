package workshop

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/game"
	"github.com/arturo/voltz/internal/profile"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	"github.com/arturo/voltz/internal/ui/components"
	"github.com/arturo/voltz/internal/ui/layout"
	"github.com/arturo/voltz/internal/ui/theme"
)

const (
	coarseStep = 5.0
	fineStep   = 1.0
	dialRadius = 8
)

// tickMsg drives the simulation loop. The generation gates stale ticks so a
// paused or popped screen leaves no loop running.
type tickMsg struct {
	gen int
}

// WorkshopScreen hosts one angle-alignment mini-game: the solar panel or the
// wind turbine, chosen by topic. Progress is session-only.
type WorkshopScreen struct {
	topic profile.Topic
	sim   *game.Simulation
	dial  components.Dial
	gen   int

	// Cached from the last render, used to map mouse positions onto the dial.
	lastWidth  int
	lastHeight int
}

var _ screen.Screen = (*WorkshopScreen)(nil)
var _ screen.KeyHintProvider = (*WorkshopScreen)(nil)

// New creates the workshop for the given topic.
func New(topic profile.Topic) *WorkshopScreen {
	levels := game.SolarLevels()
	if topic == profile.TopicWind {
		levels = game.WindLevels()
	}
	return &WorkshopScreen{
		topic: topic,
		sim:   game.NewSimulation(levels),
		dial:  components.NewDial(dialRadius),
	}
}

func (w *WorkshopScreen) Init() tea.Cmd {
	return nil
}

func (w *WorkshopScreen) tickCmd() tea.Cmd {
	gen := w.gen
	return tea.Tick(game.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (w *WorkshopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return w.handleTick(msg)
	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	if mm, ok := msg.(tea.MouseMsg); ok {
		w.handleMouse(mm.Mouse())
	}
	return w, nil
}

func (w *WorkshopScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != w.gen {
		return w, nil
	}

	w.sim.Tick(game.TickInterval)

	if !w.sim.Running() {
		// Level cleared or timed out; the loop stops here.
		w.gen++
		return w, nil
	}
	return w, w.tickCmd()
}

func (w *WorkshopScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		w.gen++
		w.sim.Pause()
		return w, func() tea.Msg { return router.PopScreenMsg{} }

	case "space", " ":
		if w.sim.Running() {
			w.gen++
			w.sim.Pause()
			return w, nil
		}
		w.sim.Start()
		if w.sim.Running() {
			return w, w.tickCmd()
		}
		return w, nil

	case "enter":
		if w.sim.LevelComplete() {
			if w.sim.AtLastLevel() {
				w.gen++
				w.sim.Pause()
				return w, func() tea.Msg { return router.PopScreenMsg{} }
			}
			w.sim.NextLevel()
		}
		return w, nil

	case "r":
		w.gen++
		w.sim.ResetLevel()
		return w, nil

	case "left":
		w.sim.Rotate(-coarseStep)
	case "right":
		w.sim.Rotate(coarseStep)
	case "shift+left":
		w.sim.Rotate(-fineStep)
	case "shift+right":
		w.sim.Rotate(fineStep)
	}
	return w, nil
}

// handleMouse points the user angle at the cursor. The dial is rendered
// centered in the content area, below the header.
func (w *WorkshopScreen) handleMouse(m tea.Mouse) {
	if w.lastWidth == 0 || w.lastHeight == 0 {
		return
	}
	cx := float64(w.lastWidth) / 2
	cy := float64(layout.HeaderHeight) + float64(w.lastHeight)/2

	// Undo the 2:1 horizontal stretch of the dial grid.
	dx := (float64(m.X) - cx) / 2
	dy := float64(m.Y) - cy
	if dx == 0 && dy == 0 {
		return
	}
	w.sim.SetUserAngle(game.AngleFromPoint(dx, dy))
}

func (w *WorkshopScreen) View(width, height int) string {
	w.lastWidth = width
	w.lastHeight = height

	cw := components.ContentWidth(width)
	level := w.sim.CurrentLevel()

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s · Level %d/%d · %s",
			w.Title(), w.sim.LevelIndex()+1, w.sim.LevelCount(), level.Param))

	dial := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(w.dial.View(w.sim.UserAngle(), w.sim.DrivenAngle()))

	bar := components.NewProgressBar(
		"Efficiency", w.sim.EfficiencyPercent()/100, true, cw-8).View()

	timeStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if w.sim.TimeRemaining() < 10 {
		timeStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	stats := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s   %s   %s",
			timeStyle.Render(fmt.Sprintf("⏱ %4.1fs", w.sim.TimeRemaining())),
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("target %d%%", int(level.Target))),
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
				Render(fmt.Sprintf("score %d", w.sim.Score())),
		))

	status := w.statusLine(cw)

	content := strings.Join([]string{heading, dial, bar, stats, status}, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (w *WorkshopScreen) statusLine(cw int) string {
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	switch {
	case w.sim.LevelComplete():
		msg := "Level complete!"
		if w.sim.AtLastLevel() {
			msg = "All levels complete! Enter to finish"
		} else {
			msg += " Enter for the next level"
		}
		return center.Render(
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(msg))

	case w.sim.TimeRemaining() <= 0:
		return center.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("Time's up! R to retry"))

	case !w.sim.Running():
		return center.Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("space to start"))
	}

	return center.Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("align the needle with the ◆ marker"))
}

func (w *WorkshopScreen) Title() string {
	if w.topic == profile.TopicWind {
		return "Wind Workshop"
	}
	return "Solar Workshop"
}

func (w *WorkshopScreen) KeyHints() []layout.KeyHint {
	if w.sim.LevelComplete() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next level"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Rotate"},
		{Key: "Space", Description: "Start/Pause"},
		{Key: "R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}
