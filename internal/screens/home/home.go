package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/arturo/voltz/internal/chat"
	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/i18n"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	"github.com/arturo/voltz/internal/screens/activities"
	"github.com/arturo/voltz/internal/ui/components"
	"github.com/arturo/voltz/internal/ui/layout"
)

// HomeScreen is the main home screen of the application: the learner's
// profile summary plus the arcade menu.
type HomeScreen struct {
	controller *flow.Controller
	chatSvc    *chat.Service
	provider   chat.Provider
	scorer     chat.ScoreProvider
	onboarding func() screen.Screen

	menu          components.Menu
	menuLabels    []string
	showingReset  bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. onboardingFactory builds the screen shown
// after a profile reset.
func New(controller *flow.Controller, chatSvc *chat.Service, provider chat.Provider, scorer chat.ScoreProvider, onboardingFactory func() screen.Screen) *HomeScreen {
	h := &HomeScreen{
		controller: controller,
		chatSvc:    chatSvc,
		provider:   provider,
		scorer:     scorer,
		onboarding: onboardingFactory,
	}

	p := controller.Profile()
	lang := p.Language

	h.mascotVariant = MascotIdle
	if p.SolarScore >= 80 || p.WindScore >= 80 || p.CustomProjectScore >= 80 {
		h.mascotVariant = MascotCelebrating
	} else if p.LoginCount >= 5 {
		h.mascotVariant = MascotCharged
	}

	h.menuLabels = []string{
		strings.ToUpper(i18n.Translate("Continue Learning", lang)),
		strings.ToUpper(i18n.Translate("Reset Profile", lang)),
		strings.ToUpper(i18n.Translate("Exit", lang)),
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			if err := h.controller.ContinueLearning(); err != nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: activities.New(h.controller, h.chatSvc, h.provider, h.scorer),
				}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			h.showingReset = true
			return nil
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.showingReset {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				h.showingReset = false
				if err := h.controller.ResetProfile(); err != nil {
					return h, nil
				}
				next := h.onboarding()
				return h, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			case "n", "N", "esc":
				h.showingReset = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	p := h.controller.Profile()

	if h.showingReset {
		return renderCabinetFrame(renderResetConfirm(cw), width, height)
	}

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	// 3. Greeting
	greeting := i18n.Translate("Welcome back", p.Language)
	if p.Name != "" {
		greeting += ", " + p.Name + "!"
	}
	sections = append(sections, renderGreeting(greeting, cw))

	// 4. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		p.SolarScore, p.WindScore, p.CustomProjectScore, p.LoginCount, cw, compact))

	// 5. Menu (same width box)
	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.showingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
