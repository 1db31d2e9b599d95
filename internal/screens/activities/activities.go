package activities

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/chat"
	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/i18n"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	chatscreen "github.com/arturo/voltz/internal/screens/chat"
	"github.com/arturo/voltz/internal/screens/customproject"
	"github.com/arturo/voltz/internal/screens/module"
	"github.com/arturo/voltz/internal/screens/placeholder"
	"github.com/arturo/voltz/internal/ui/components"
	"github.com/arturo/voltz/internal/ui/layout"
	"github.com/arturo/voltz/internal/ui/theme"
)

// ActivitiesScreen is the activity selection menu between home and the
// learning modules.
type ActivitiesScreen struct {
	controller *flow.Controller
	chatSvc    *chat.Service
	provider   chat.Provider
	scorer     chat.ScoreProvider

	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*ActivitiesScreen)(nil)
var _ screen.KeyHintProvider = (*ActivitiesScreen)(nil)

// New creates the activity menu. The controller must already be in the
// activity selection state.
func New(controller *flow.Controller, chatSvc *chat.Service, provider chat.Provider, scorer chat.ScoreProvider) *ActivitiesScreen {
	a := &ActivitiesScreen{
		controller: controller,
		chatSvc:    chatSvc,
		provider:   provider,
		scorer:     scorer,
	}

	lang := controller.Profile().Language
	a.menuLabels = []string{
		strings.ToUpper(i18n.Translate("Solar Energy", lang)),
		strings.ToUpper(i18n.Translate("Wind Energy", lang)),
		strings.ToUpper(i18n.Translate("Custom Project", lang)),
		strings.ToUpper(i18n.Translate("Talk to Me", lang)),
		strings.ToUpper(i18n.Translate("Home", lang)),
	}

	items := []components.MenuItem{
		{Label: a.menuLabels[0], Action: func() tea.Cmd {
			return a.enter(flow.ActivitySolar)
		}},
		{Label: a.menuLabels[1], Action: func() tea.Cmd {
			return a.enter(flow.ActivityWind)
		}},
		{Label: a.menuLabels[2], Action: func() tea.Cmd {
			return a.enter(flow.ActivityCustomProject)
		}},
		{Label: a.menuLabels[3], Action: func() tea.Cmd {
			return a.enter(flow.ActivityTalkToMe)
		}},
		{Label: a.menuLabels[4], Action: func() tea.Cmd {
			return a.goHome()
		}},
	}

	a.menu = components.NewMenu(items)
	return a
}

// enter transitions the flow controller and pushes the activity's screen.
func (a *ActivitiesScreen) enter(activity flow.Activity) tea.Cmd {
	// Without a chat service the companion surface can't run; show the
	// placeholder and leave the flow state untouched.
	if activity == flow.ActivityTalkToMe && a.chatSvc == nil {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: placeholder.New("Talk to Me")}
		}
	}

	if err := a.controller.ChooseActivity(activity); err != nil {
		return nil
	}

	var next screen.Screen
	switch activity {
	case flow.ActivitySolar, flow.ActivityWind:
		next = module.New(a.controller)
	case flow.ActivityCustomProject:
		next = customproject.New(a.controller, a.provider, a.scorer)
	case flow.ActivityTalkToMe:
		next = chatscreen.New(a.controller, a.chatSvc)
	default:
		return nil
	}

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (a *ActivitiesScreen) goHome() tea.Cmd {
	if err := a.controller.GoHome(); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (a *ActivitiesScreen) Init() tea.Cmd {
	return nil
}

func (a *ActivitiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return a, a.goHome()
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *ActivitiesScreen) View(width, height int) string {
	lang := a.controller.Profile().Language
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.Translate("Choose an activity", lang))

	var buttons []string
	for i, label := range a.menuLabels {
		buttons = append(buttons, components.ArcadeButton(label, i == a.menu.Selected, 24))
	}
	menuBlock := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))

	content := heading + "\n\n" + menuBlock

	return components.CabinetFrame(content, width, height)
}

func (a *ActivitiesScreen) Title() string {
	return "Activities"
}

func (a *ActivitiesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}
