package customproject

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arturo/voltz/internal/chat"
	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/profile"
	"github.com/arturo/voltz/internal/router"
)

type memStore struct {
	p profile.Profile
}

func (m *memStore) Load() profile.Profile { return m.p }
func (m *memStore) Save(p profile.Profile) error {
	m.p = p
	return nil
}
func (m *memStore) Registered() bool { return m.p.Registered() }
func (m *memStore) Clear() error {
	m.p = profile.Default()
	return nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// newTestProject walks a registered profile into the custom project module.
// The nil provider keeps the guided session on the offline path.
func newTestProject(t *testing.T) (*ProjectScreen, *flow.Controller, *memStore) {
	t.Helper()
	st := &memStore{p: profile.Profile{Language: "English", Name: "Ana"}}
	c := flow.NewController(st)
	if err := c.ContinueLearning(); err != nil {
		t.Fatalf("ContinueLearning: %v", err)
	}
	if err := c.ChooseActivity(flow.ActivityCustomProject); err != nil {
		t.Fatalf("ChooseActivity: %v", err)
	}
	return New(c, nil, chat.StubScorer{}), c, st
}

func startProject(t *testing.T, p *ProjectScreen, c *flow.Controller, name string) {
	t.Helper()
	p.nameInput.Model.SetValue(name)
	p.Update(specialKey(tea.KeyEnter))
	if c.State().Project != flow.ProjectGuided {
		t.Fatalf("project state = %v, want guided", c.State().Project)
	}
}

func TestBlankProjectNameRejected(t *testing.T) {
	p, c, _ := newTestProject(t)

	p.Update(specialKey(tea.KeyEnter))
	if c.State().Project != flow.ProjectNameEntry {
		t.Errorf("project state = %v, want still at name entry", c.State().Project)
	}
	if p.session != nil {
		t.Error("no session should exist before a valid name")
	}
}

func TestStartProjectCreatesSession(t *testing.T) {
	p, c, _ := newTestProject(t)
	startProject(t, p, c, "  Solar Go-Kart ")

	if c.ProjectName() != "Solar Go-Kart" {
		t.Errorf("project name = %q, want trimmed", c.ProjectName())
	}
	if p.session == nil {
		t.Error("starting should create the guided session")
	}
}

func TestSendRecordsTranscriptAndWaits(t *testing.T) {
	p, c, _ := newTestProject(t)
	startProject(t, p, c, "Wind Kite")

	p.chatInput.Model.SetValue("It flies a turbine up high")
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("sending should produce a command")
	}
	if !p.waiting {
		t.Error("screen should be waiting on the mentor")
	}
	if len(p.transcript) != 1 || p.transcript[0].learner != "It flies a turbine up high" {
		t.Errorf("transcript = %+v", p.transcript)
	}

	// Enter while waiting is ignored.
	p.chatInput.Model.SetValue("again")
	_, cmd = p.Update(specialKey(tea.KeyEnter))
	if cmd != nil || len(p.transcript) != 1 {
		t.Error("input must be ignored while a turn is in flight")
	}
}

func TestTurnFillsMentorReply(t *testing.T) {
	p, c, _ := newTestProject(t)
	startProject(t, p, c, "Wind Kite")

	p.chatInput.Model.SetValue("hello")
	p.Update(specialKey(tea.KeyEnter))
	p.Update(turnMsg{turn: chat.ProjectTurn{Reply: "What problem does it solve?"}})

	if p.waiting {
		t.Error("turn should clear the waiting flag")
	}
	if p.transcript[0].mentor != "What problem does it solve?" {
		t.Errorf("mentor reply = %q", p.transcript[0].mentor)
	}
	if c.State().Project != flow.ProjectGuided {
		t.Error("a non-final turn must stay in the guided phase")
	}
}

func TestFinalTurnFinishesProject(t *testing.T) {
	p, c, st := newTestProject(t)
	startProject(t, p, c, "Wind Kite")

	p.chatInput.Model.SetValue("done")
	p.Update(specialKey(tea.KeyEnter))
	p.Update(turnMsg{turn: chat.ProjectTurn{Reply: "Well done!", Done: true, Score: 85}})

	if c.State().Project != flow.ProjectResults {
		t.Fatalf("project state = %v, want results", c.State().Project)
	}
	if c.LastScore() != 85 {
		t.Errorf("last score = %d, want 85", c.LastScore())
	}
	if st.p.CustomProjectScore != 85 {
		t.Errorf("persisted project score = %d, want 85", st.p.CustomProjectScore)
	}
}

func TestTurnErrorShownWithoutLeavingGuided(t *testing.T) {
	p, c, _ := newTestProject(t)
	startProject(t, p, c, "Wind Kite")

	p.chatInput.Model.SetValue("hello")
	p.Update(specialKey(tea.KeyEnter))
	p.Update(turnMsg{err: errors.New("model unavailable")})

	if p.errMsg != "model unavailable" {
		t.Errorf("error message = %q", p.errMsg)
	}
	if c.State().Project != flow.ProjectGuided {
		t.Error("an error must keep the guided phase")
	}
}

func TestOfflineSessionFinishesEventually(t *testing.T) {
	p, c, st := newTestProject(t)
	startProject(t, p, c, "Solar Oven")

	// Resolve each in-flight step synchronously through the offline path.
	for i := 0; i < 5 && c.State().Project == flow.ProjectGuided; i++ {
		p.chatInput.Model.SetValue("my idea")
		p.Update(specialKey(tea.KeyEnter))

		turn, err := p.session.Step(context.Background(), "my idea")
		if err != nil {
			t.Fatalf("offline step %d: %v", i, err)
		}
		p.Update(turnMsg{turn: turn})
	}

	if c.State().Project != flow.ProjectResults {
		t.Fatalf("project state = %v, want results after the canned exchange", c.State().Project)
	}
	if st.p.CustomProjectScore < 60 || st.p.CustomProjectScore > 100 {
		t.Errorf("stub score = %d, want 60-100", st.p.CustomProjectScore)
	}
}

func TestEscDuringNameEntryReturnsToActivities(t *testing.T) {
	p, c, _ := newTestProject(t)

	_, cmd := p.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if c.State().Kind != flow.KindActivitySelect {
		t.Errorf("state = %+v, want activity select", c.State())
	}
}

func TestResultsEnterGoesHome(t *testing.T) {
	p, c, _ := newTestProject(t)
	startProject(t, p, c, "Wind Kite")
	p.chatInput.Model.SetValue("done")
	p.Update(specialKey(tea.KeyEnter))
	p.Update(turnMsg{turn: chat.ProjectTurn{Reply: "Done!", Done: true, Score: 90}})

	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on results should produce a command")
	}
	if c.State().Kind != flow.KindHome {
		t.Errorf("state = %+v, want home", c.State())
	}
}
