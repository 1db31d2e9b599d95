package chat

import (
	"context"
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

// tab is one of the Talk to Me surfaces.
type tab int

const (
	tabChat tab = iota
	tabImage
	tabAudio
)

var tabLabels = []string{"Chat", "Image", "Audio"}

// initDoneMsg is sent when the chat service has finished initializing.
type initDoneMsg struct {
	err error
}

// replyMsg is sent when a chat exchange completes.
type replyMsg struct {
	reply string
	err   error
}

// ChatScreen is the Talk to Me surface: a text conversation with the
// learning companion, plus image and audio tabs pending a multimodal
// backend.
type ChatScreen struct {
	controller *flow.Controller
	service    *chat.Service

	active  tab
	input   components.TextInput
	waiting bool
	errMsg  string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the Talk to Me screen.
func New(controller *flow.Controller, service *chat.Service) *ChatScreen {
	return &ChatScreen{
		controller: controller,
		service:    service,
		input:      components.NewTextInput("Ask me anything about energy...", false, 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	service := c.service
	return tea.Batch(c.input.Init(), func() tea.Msg {
		return initDoneMsg{err: service.Initialize(context.Background())}
	})
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		if msg.err != nil {
			c.errMsg = msg.err.Error()
		}
		return c, nil

	case replyMsg:
		c.waiting = false
		if msg.err != nil {
			c.errMsg = msg.err.Error()
		}
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.active == tabChat {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return c, c.leave()
	case "tab":
		c.active = (c.active + 1) % tab(len(tabLabels))
		return c, nil
	case "shift+tab":
		c.active = (c.active + tab(len(tabLabels)) - 1) % tab(len(tabLabels))
		return c, nil
	case "ctrl+r":
		c.service.ResetSession()
		c.errMsg = ""
		return c, nil
	case "enter":
		if c.active != tabChat || c.waiting {
			return c, nil
		}
		text := strings.TrimSpace(c.input.Value())
		if text == "" {
			return c, nil
		}
		c.input = components.NewTextInput("Ask me anything about energy...", false, 200)
		c.waiting = true
		c.errMsg = ""
		service := c.service
		return c, tea.Batch(c.input.Init(), func() tea.Msg {
			reply, err := service.Send(context.Background(), text)
			return replyMsg{reply: reply, err: err}
		})
	}

	if c.active == tabChat {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

// leave returns to the activity menu.
func (c *ChatScreen) leave() tea.Cmd {
	if err := c.controller.BackToActivities(); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{c.viewTabs(cw)}

	switch c.active {
	case tabChat:
		sections = append(sections, c.viewChat(cw))
	case tabImage:
		sections = append(sections, c.viewPlaceholder(cw,
			"Image understanding is coming soon.\nFor now, describe what you see and ask away!"))
	case tabAudio:
		sections = append(sections, c.viewPlaceholder(cw,
			"Voice chat is coming soon.\nType your questions in the Chat tab!"))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (c *ChatScreen) viewTabs(cw int) string {
	activeStyle := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Bold(true).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 2)

	parts := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if tab(i) == c.active {
			parts[i] = activeStyle.Render(label)
		} else {
			parts[i] = inactiveStyle.Render(label)
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(parts, " "))
}

func (c *ChatScreen) viewChat(cw int) string {
	lang := c.controller.Profile().Language

	youStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	botStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 12)

	var lines []string
	for _, m := range c.service.History() {
		switch m.Role {
		case chat.RoleUser:
			lines = append(lines, youStyle.Render("you ")+textStyle.Render(m.Content))
		case chat.RoleAssistant:
			lines = append(lines, botStyle.Render("voltz ")+textStyle.Render(m.Content))
		}
	}
	if c.waiting {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("thinking..."))
	}
	if c.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
	}

	if len(lines) == 0 {
		greeting := i18n.Translate("Talk to Me", lang)
		if !c.service.Ready() {
			greeting = "No AI provider is configured.\nSet an API key and restart to chat."
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(greeting))
	}

	transcript := components.ArcadeCard(strings.Join(lines, "\n"), cw)

	return transcript + "\n\n" + c.input.View()
}

func (c *ChatScreen) viewPlaceholder(cw int, text string) string {
	return components.ArcadeCard(
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Align(lipgloss.Center).
			Render("╌╌ Coming Soon ╌╌\n\n"+text), cw)
}

func (c *ChatScreen) Title() string {
	return "Talk to Me"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch tab"},
	}
	if c.active == tabChat {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Send"},
			layout.KeyHint{Key: "Ctrl+R", Description: "New session"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}
