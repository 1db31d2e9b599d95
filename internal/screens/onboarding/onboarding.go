package onboarding

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/i18n"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	"github.com/arturo/voltz/internal/ui/components"
	"github.com/arturo/voltz/internal/ui/layout"
	"github.com/arturo/voltz/internal/ui/theme"
)

// prompts are the English source strings for each wizard step, translated at
// render time once a language has been entered.
var prompts = map[flow.OnboardStep]string{
	flow.StepLanguage:   "Which language do you speak? (English, Español, Français, Deutsch)",
	flow.StepName:       "What's your name?",
	flow.StepTopic:      "Which energy topic excites you most?",
	flow.StepMotivation: "What would you like to build one day?",
}

// OnboardingScreen hosts the onboarding wizard of the flow controller.
type OnboardingScreen struct {
	controller  *flow.Controller
	homeFactory func() screen.Screen

	input    components.TextInput
	errBlank bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding wizard. homeFactory builds the screen shown
// after the profile is confirmed.
func New(controller *flow.Controller, homeFactory func() screen.Screen) *OnboardingScreen {
	o := &OnboardingScreen{
		controller:  controller,
		homeFactory: homeFactory,
	}
	o.loadStep()
	return o
}

// loadStep rebuilds the text input for the current step, prefilled with any
// previously collected answer.
func (o *OnboardingScreen) loadStep() {
	step := o.controller.State().Step
	if step > flow.StepMotivation {
		return
	}
	o.input = components.NewTextInput("type here...", false, 60)
	o.input.Model.SetValue(o.controller.Answer(step))
	o.errBlank = false
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.input.Init()
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	state := o.controller.State()
	if state.Kind != flow.KindOnboarding {
		return o, nil
	}

	if state.Step == flow.StepConfirm {
		return o.updateConfirm(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			o.controller.SetAnswer(state.Step, o.input.Value())
			if err := o.controller.Next(); err != nil {
				o.errBlank = true
				return o, nil
			}
			o.loadStep()
			return o, o.input.Init()
		case "esc":
			o.controller.Back()
			o.loadStep()
			return o, o.input.Init()
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	o.controller.SetAnswer(state.Step, o.input.Value())
	return o, cmd
}

func (o *OnboardingScreen) updateConfirm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "enter":
		if err := o.controller.ConfirmOnboarding(); err != nil {
			return o, nil
		}
		next := o.homeFactory()
		return o, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "e", "esc":
		if err := o.controller.RestartOnboarding(); err != nil {
			return o, nil
		}
		o.loadStep()
		return o, o.input.Init()
	}
	return o, nil
}

func (o *OnboardingScreen) View(width, height int) string {
	state := o.controller.State()
	if state.Kind != flow.KindOnboarding {
		return ""
	}

	cw := components.ContentWidth(width)
	lang := o.controller.Answer(flow.StepLanguage)

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("Welcome to Voltz!")

	var card string
	if state.Step == flow.StepConfirm {
		card = o.viewConfirm(cw, lang)
	} else {
		card = o.viewStep(state.Step, cw, lang)
	}

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("step %d / %d", int(state.Step)+1, int(flow.StepConfirm)+1))

	content := heading + "\n\n" + card + "\n\n" + progress
	return components.CabinetFrame(content, width, height)
}

func (o *OnboardingScreen) viewStep(step flow.OnboardStep, cw int, lang string) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(i18n.Translate(prompts[step], lang))

	body := prompt + "\n\n" + o.input.View()

	if o.errBlank {
		body += "\n" + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Please type an answer first.")
	}

	return components.ArcadeCard(body, cw)
}

func (o *OnboardingScreen) viewConfirm(cw int, lang string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	rows := []string{
		labelStyle.Render("Language   ") + valueStyle.Render(o.controller.Answer(flow.StepLanguage)),
		labelStyle.Render("Name       ") + valueStyle.Render(o.controller.Answer(flow.StepName)),
		labelStyle.Render("Topic      ") + valueStyle.Render(o.controller.Answer(flow.StepTopic)),
		labelStyle.Render("Motivation ") + valueStyle.Render(o.controller.Answer(flow.StepMotivation)),
	}

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(i18n.Translate("Confirm", lang) + ": enter · edit: e")

	return components.ArcadeCard(strings.Join(rows, "\n")+"\n\n"+hint, cw)
}

func (o *OnboardingScreen) Title() string {
	return "Onboarding"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	if o.controller.State().Step == flow.StepConfirm {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "E", Description: "Edit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}
