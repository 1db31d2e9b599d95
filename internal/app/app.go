package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/chat"
	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
	"github.com/arturo/voltz/internal/screens/home"
	"github.com/arturo/voltz/internal/screens/onboarding"
	"github.com/arturo/voltz/internal/screens/welcome"
	"github.com/arturo/voltz/internal/store"
	"github.com/arturo/voltz/internal/ui/layout"
)

// Deps are the services the TUI runs on.
type Deps struct {
	Profiles *store.ProfileStore
	ChatSvc  *chat.Service
	Provider chat.Provider
	Scorer   chat.ScoreProvider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	profiles *store.ProfileStore
	width    int
	height   int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(deps Deps) AppModel {
	controller := flow.NewController(deps.Profiles)

	// Home and onboarding each replace the other, so both are factories.
	var homeFactory func() screen.Screen
	onboardFactory := func() screen.Screen {
		return onboarding.New(controller, func() screen.Screen { return homeFactory() })
	}
	homeFactory = func() screen.Screen {
		return home.New(controller, deps.ChatSvc, deps.Provider, deps.Scorer, onboardFactory)
	}

	next := func() screen.Screen {
		if deps.Profiles.Registered() {
			return homeFactory()
		}
		return onboardFactory()
	}

	return AppModel{
		router:   router.New(welcome.New(next)),
		profiles: deps.Profiles,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders without chrome.
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	p := m.profiles.Load()
	header := layout.RenderHeader(title, p.SolarScore, p.WindScore, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store, wires the services and starts the Bubble Tea program.
func Run(dbPath string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profiles := st.Profiles()
	profiles.RecordLogin()

	var provider chat.Provider
	if cfg, ok := chat.DiscoverConfig(); ok {
		provider, err = chat.NewProvider(context.Background(), cfg, st.ChatLog())
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: chat provider unavailable:", err)
		}
	}
	chatSvc := chat.NewService(provider, profiles.Load)

	deps := Deps{
		Profiles: profiles,
		ChatSvc:  chatSvc,
		Provider: provider,
		Scorer:   chat.StubScorer{},
	}

	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
