package module

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/i18n"
	"github.com/arturo/voltz/internal/profile"
	"github.com/arturo/voltz/internal/quiz"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	"github.com/arturo/voltz/internal/screens/workshop"
	"github.com/arturo/voltz/internal/ui/components"
	"github.com/arturo/voltz/internal/ui/layout"
	"github.com/arturo/voltz/internal/ui/theme"
)

// ModuleScreen walks one topic module: intro pages, then the quiz, then the
// results with the workshop game on offer. The flow controller owns the
// phase; this screen renders it and feeds input back.
type ModuleScreen struct {
	controller *flow.Controller
	topic      profile.Topic
	questions  []quiz.Question

	engine *quiz.Engine
	mc     components.MultiChoice

	resultsMenu components.Menu
	resultsLbls []string
}

var _ screen.Screen = (*ModuleScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleScreen)(nil)

// New creates a ModuleScreen for the controller's active topic.
func New(controller *flow.Controller) *ModuleScreen {
	topic := controller.State().Topic

	var questions []quiz.Question
	switch topic {
	case profile.TopicWind:
		questions = quiz.WindQuestions()
	default:
		questions = quiz.SolarQuestions()
	}

	m := &ModuleScreen{
		controller: controller,
		topic:      topic,
		questions:  questions,
		engine:     quiz.New(questions, controller.QuizToken()),
	}
	m.loadQuestion()
	m.buildResultsMenu()
	return m
}

func (m *ModuleScreen) buildResultsMenu() {
	lang := m.controller.Profile().Language
	m.resultsLbls = []string{
		strings.ToUpper(i18n.Translate("Try Again", lang)),
		strings.ToUpper(i18n.Translate("Workshop", lang)),
		strings.ToUpper(i18n.Translate("Home", lang)),
	}

	items := []components.MenuItem{
		{Label: m.resultsLbls[0], Action: func() tea.Cmd {
			if err := m.controller.TryAgain(); err != nil {
				return nil
			}
			m.engine.Reset(m.controller.QuizToken())
			m.loadQuestion()
			return nil
		}},
		{Label: m.resultsLbls[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: workshop.New(m.topic)}
			}
		}},
		{Label: m.resultsLbls[2], Action: func() tea.Cmd {
			if err := m.controller.GoHome(); err != nil {
				return nil
			}
			// Pop past the activities screen too.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return tea.Batch(pop, pop)
		}},
	}
	m.resultsMenu = components.NewMenu(items)
}

// loadQuestion rebuilds the multiple-choice component for the engine's
// current question.
func (m *ModuleScreen) loadQuestion() {
	q := m.engine.Current()
	if q == nil {
		return
	}
	lang := m.controller.Profile().Language

	correct := 0
	options := make([]string, len(q.Options))
	for i, opt := range q.Options {
		options[i] = i18n.Translate(opt, lang)
		if opt == q.Answer {
			correct = i
		}
	}
	m.mc = components.NewMultiChoice(i18n.Translate(q.Text, lang), options, correct)
}

func (m *ModuleScreen) Init() tea.Cmd {
	return nil
}

func (m *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	state := m.controller.State()
	if state.Kind != flow.KindModule {
		return m, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)

	switch state.Phase {
	case flow.PhaseIntro:
		if !isKey {
			return m, nil
		}
		switch kmsg.String() {
		case "enter", "space", " ", "right":
			_ = m.controller.AdvanceIntro()
		case "esc":
			return m, m.leave()
		}
		return m, nil

	case flow.PhaseQuiz:
		if isKey && kmsg.String() == "esc" && !m.mc.Submitted {
			return m, m.leave()
		}
		return m.updateQuiz(msg)

	case flow.PhaseResults:
		var cmd tea.Cmd
		m.resultsMenu, cmd = m.resultsMenu.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateQuiz feeds input to the multiple-choice component and advances the
// engine once the learner has seen the feedback for a submitted answer.
func (m *ModuleScreen) updateQuiz(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m.mc.Submitted {
		// Any key dismisses the feedback and grades the answer.
		if _, ok := msg.(tea.KeyMsg); !ok {
			return m, nil
		}

		q := m.engine.Current()
		if q != nil && m.mc.ChosenIndex >= 0 && m.mc.ChosenIndex < len(q.Options) {
			m.engine.Select(q.Options[m.mc.ChosenIndex])
		}
		score, done := m.engine.Confirm()
		if done {
			_ = m.controller.FinishQuiz(score)
			return m, nil
		}
		m.loadQuestion()
		return m, nil
	}

	var cmd tea.Cmd
	m.mc, cmd = m.mc.Update(msg)
	return m, cmd
}

// leave returns to the activity menu.
func (m *ModuleScreen) leave() tea.Cmd {
	if err := m.controller.BackToActivities(); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (m *ModuleScreen) View(width, height int) string {
	state := m.controller.State()
	if state.Kind != flow.KindModule {
		return ""
	}

	cw := components.ContentWidth(width)

	var content string
	switch state.Phase {
	case flow.PhaseIntro:
		content = m.viewIntro(state, cw)
	case flow.PhaseQuiz:
		content = m.viewQuiz(cw)
	case flow.PhaseResults:
		content = m.viewResults(cw)
	}

	return components.CabinetFrame(content, width, height)
}

func (m *ModuleScreen) viewIntro(state flow.State, cw int) string {
	lang := m.controller.Profile().Language
	pages := flow.IntroPages(m.topic)
	if len(pages) == 0 {
		return ""
	}
	page := state.IntroPage
	if page >= len(pages) {
		page = len(pages) - 1
	}

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(m.topicLabel())

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 8).
		Align(lipgloss.Center).
		Render(i18n.Translate(pages[page], lang))

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%d / %d", page+1, len(pages)))

	return heading + "\n\n" + components.ArcadeCard(body, cw) + "\n\n" + progress
}

func (m *ModuleScreen) viewQuiz(cw int) string {
	q := m.engine.Current()
	if q == nil {
		return ""
	}

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s · %d / %d",
			m.topicLabel(), m.engine.Index()+1, len(m.engine.Questions())))

	body := lipgloss.NewStyle().Width(cw - 8).Render(m.mc.View())

	section := progress + "\n\n" + components.ArcadeCard(body, cw)

	if m.mc.Submitted {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Width(cw).
			Align(lipgloss.Center).
			Render("press any key to continue")
		section += "\n\n" + hint
	}

	return section
}

func (m *ModuleScreen) viewResults(cw int) string {
	lang := m.controller.Profile().Language
	score := m.controller.LastScore()

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.Translate("Quiz complete!", lang))

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if score < 60 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	scoreLine := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.Translate("Score", lang) + ": " + scoreStyle.Render(fmt.Sprintf("%d / 100", score)))

	var buttons []string
	for i, label := range m.resultsLbls {
		buttons = append(buttons, components.ArcadeButton(label, i == m.resultsMenu.Selected, 20))
	}
	menuBlock := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))

	return heading + "\n\n" + scoreLine + "\n\n" + menuBlock
}

func (m *ModuleScreen) topicLabel() string {
	lang := m.controller.Profile().Language
	if m.topic == profile.TopicWind {
		return i18n.Translate("Wind Energy", lang)
	}
	return i18n.Translate("Solar Energy", lang)
}

func (m *ModuleScreen) Title() string {
	if m.topic == profile.TopicWind {
		return "Wind Energy"
	}
	return "Solar Energy"
}

func (m *ModuleScreen) KeyHints() []layout.KeyHint {
	switch m.controller.State().Phase {
	case flow.PhaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case flow.PhaseQuiz:
		if m.mc.Submitted {
			return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
}
