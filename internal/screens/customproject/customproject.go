package customproject

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/chat"
	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/i18n"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	"github.com/arturo/voltz/internal/ui/components"
	"github.com/arturo/voltz/internal/ui/layout"
	"github.com/arturo/voltz/internal/ui/theme"
)

// turnMsg is sent when a guided-learning exchange completes.
type turnMsg struct {
	turn chat.ProjectTurn
	err  error
}

// transcriptEntry is one rendered line pair of the guided conversation.
type transcriptEntry struct {
	learner string
	mentor  string
}

// ProjectScreen runs the custom project module: name entry, then the guided
// learning loop with a mentor, then the results.
type ProjectScreen struct {
	controller *flow.Controller
	provider   chat.Provider
	scorer     chat.ScoreProvider

	nameInput  components.TextInput
	chatInput  components.TextInput
	session    *chat.GuidedSession
	transcript []transcriptEntry
	waiting    bool
	errMsg     string
}

var _ screen.Screen = (*ProjectScreen)(nil)
var _ screen.KeyHintProvider = (*ProjectScreen)(nil)

// New creates the custom project screen. provider may be nil; the session
// then falls back to the scorer.
func New(controller *flow.Controller, provider chat.Provider, scorer chat.ScoreProvider) *ProjectScreen {
	lang := controller.Profile().Language
	return &ProjectScreen{
		controller: controller,
		provider:   provider,
		scorer:     scorer,
		nameInput:  components.NewTextInput(i18n.Translate("Name your project", lang), false, 40),
		chatInput:  components.NewTextInput("Tell your mentor...", false, 120),
	}
}

func (p *ProjectScreen) Init() tea.Cmd {
	return p.nameInput.Init()
}

func (p *ProjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	state := p.controller.State()
	if state.Kind != flow.KindCustomProject {
		return p, nil
	}

	if tm, ok := msg.(turnMsg); ok {
		return p.handleTurn(tm)
	}

	switch state.Project {
	case flow.ProjectNameEntry:
		return p.updateNameEntry(msg)
	case flow.ProjectGuided:
		return p.updateGuided(msg)
	case flow.ProjectResults:
		return p.updateResults(msg)
	}
	return p, nil
}

func (p *ProjectScreen) updateNameEntry(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return p, p.leave()
		case "enter":
			p.controller.SetProjectName(p.nameInput.Value())
			if err := p.controller.StartProject(); err != nil {
				p.nameInput.Submit(false)
				return p, nil
			}
			p.session = chat.NewGuidedSession(p.provider, p.scorer, p.controller.ProjectName())
			return p, p.chatInput.Init()
		}
	}

	var cmd tea.Cmd
	p.nameInput, cmd = p.nameInput.Update(msg)
	return p, cmd
}

func (p *ProjectScreen) updateGuided(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return p, p.leave()
		case "enter":
			if p.waiting {
				return p, nil
			}
			text := strings.TrimSpace(p.chatInput.Value())
			if text == "" {
				return p, nil
			}
			p.chatInput = components.NewTextInput("Tell your mentor...", false, 120)
			p.waiting = true
			p.errMsg = ""
			session := p.session
			p.transcript = append(p.transcript, transcriptEntry{learner: text})
			return p, tea.Batch(p.chatInput.Init(), func() tea.Msg {
				turn, err := session.Step(context.Background(), text)
				return turnMsg{turn: turn, err: err}
			})
		}
	}

	var cmd tea.Cmd
	p.chatInput, cmd = p.chatInput.Update(msg)
	return p, cmd
}

func (p *ProjectScreen) handleTurn(msg turnMsg) (screen.Screen, tea.Cmd) {
	p.waiting = false

	if msg.err != nil {
		p.errMsg = msg.err.Error()
		return p, nil
	}

	if len(p.transcript) > 0 {
		p.transcript[len(p.transcript)-1].mentor = msg.turn.Reply
	}

	if msg.turn.Done {
		_ = p.controller.FinishProject(msg.turn.Score)
	}
	return p, nil
}

func (p *ProjectScreen) updateResults(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		if err := p.controller.GoHome(); err != nil {
			return p, nil
		}
		// Pop past the activities screen too.
		pop := func() tea.Msg { return router.PopScreenMsg{} }
		return p, tea.Batch(pop, pop)
	}
	return p, nil
}

// leave returns to the activity menu.
func (p *ProjectScreen) leave() tea.Cmd {
	if err := p.controller.BackToActivities(); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (p *ProjectScreen) View(width, height int) string {
	state := p.controller.State()
	if state.Kind != flow.KindCustomProject {
		return ""
	}

	cw := components.ContentWidth(width)

	var content string
	switch state.Project {
	case flow.ProjectNameEntry:
		content = p.viewNameEntry(cw)
	case flow.ProjectGuided:
		content = p.viewGuided(cw)
	case flow.ProjectResults:
		content = p.viewResults(cw)
	}

	return components.CabinetFrame(content, width, height)
}

func (p *ProjectScreen) viewNameEntry(cw int) string {
	lang := p.controller.Profile().Language

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.Translate("Custom Project", lang))

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(i18n.Translate("Name your project", lang))

	card := components.ArcadeCard(prompt+"\n\n"+p.nameInput.View(), cw)

	return heading + "\n\n" + card
}

func (p *ProjectScreen) viewGuided(cw int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(p.controller.ProjectName())

	learnerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	mentorStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 12)

	var lines []string
	for _, entry := range p.transcript {
		lines = append(lines, learnerStyle.Render("you ")+textStyle.Render(entry.learner))
		if entry.mentor != "" {
			lines = append(lines, mentorStyle.Render("mentor ")+textStyle.Render(entry.mentor))
		}
	}
	if p.waiting {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("thinking..."))
	}
	if p.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg))
	}
	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Describe your project idea to get started."))
	}

	transcript := components.ArcadeCard(strings.Join(lines, "\n"), cw)

	return heading + "\n\n" + transcript + "\n\n" + p.chatInput.View()
}

func (p *ProjectScreen) viewResults(cw int) string {
	lang := p.controller.Profile().Language
	score := p.controller.LastScore()

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.Translate("Level complete!", lang))

	scoreLine := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.Translate("Score", lang) + ": " +
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render(fmt.Sprintf("%d / 100", score)))

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("press enter to go home")

	return heading + "\n\n" + scoreLine + "\n\n" + hint
}

func (p *ProjectScreen) Title() string {
	return "Custom Project"
}

func (p *ProjectScreen) KeyHints() []layout.KeyHint {
	switch p.controller.State().Project {
	case flow.ProjectNameEntry:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case flow.ProjectGuided:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Home"},
		}
	}
}
