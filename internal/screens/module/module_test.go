package module

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/profile"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screens/workshop"
)

// memStore is an in-memory flow.ProfileStore for screen tests.
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

// newTestModule walks a registered profile into the given topic's module.
func newTestModule(t *testing.T, activity flow.Activity) (*ModuleScreen, *flow.Controller, *memStore) {
	t.Helper()
	st := &memStore{p: profile.Profile{Language: "English", Name: "Ana"}}
	c := flow.NewController(st)
	if err := c.ContinueLearning(); err != nil {
		t.Fatalf("ContinueLearning: %v", err)
	}
	if err := c.ChooseActivity(activity); err != nil {
		t.Fatalf("ChooseActivity: %v", err)
	}
	return New(c), c, st
}

// playIntro pages through the walkthrough until the quiz starts.
func playIntro(t *testing.T, m *ModuleScreen, c *flow.Controller) {
	t.Helper()
	for i := 0; i < 20; i++ {
		if c.State().Phase == flow.PhaseQuiz {
			return
		}
		m.Update(specialKey(tea.KeyEnter))
	}
	t.Fatal("intro never reached the quiz phase")
}

// answerQuestion moves the cursor, submits, and dismisses the feedback. With
// correctly=false it deliberately picks a wrong option.
func answerQuestion(t *testing.T, m *ModuleScreen, correctly bool) {
	t.Helper()
	q := m.engine.Current()
	if q == nil {
		t.Fatal("no current question")
	}

	target := m.mc.CorrectIndex
	if !correctly {
		target = 0
		if m.mc.CorrectIndex == 0 {
			target = 1
		}
	}
	for m.mc.Selected < target {
		m.Update(specialKey(tea.KeyDown))
	}
	m.Update(specialKey(tea.KeyEnter))
	if !m.mc.Submitted {
		t.Fatal("enter should submit the answer")
	}
	// Any key dismisses the feedback and grades.
	m.Update(specialKey(tea.KeyEnter))
}

func TestIntroAdvancesToQuiz(t *testing.T) {
	m, c, _ := newTestModule(t, flow.ActivitySolar)

	pages := len(flow.IntroPages(profile.TopicSolar))
	for i := 0; i < pages; i++ {
		if c.State().Phase != flow.PhaseIntro {
			t.Fatalf("left intro after %d of %d pages", i, pages)
		}
		m.Update(specialKey(tea.KeyEnter))
	}
	if c.State().Phase != flow.PhaseQuiz {
		t.Errorf("phase = %v, want quiz after the last intro page", c.State().Phase)
	}
}

func TestIntroEscReturnsToActivities(t *testing.T) {
	m, c, _ := newTestModule(t, flow.ActivityWind)

	_, cmd := m.Update(specialKey(tea.KeyEscape))
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

func TestPerfectQuizReachesResultsAndPersists(t *testing.T) {
	m, c, st := newTestModule(t, flow.ActivitySolar)
	playIntro(t, m, c)

	for i := 0; i < len(m.questions); i++ {
		answerQuestion(t, m, true)
	}

	if c.State().Phase != flow.PhaseResults {
		t.Fatalf("phase = %v, want results", c.State().Phase)
	}
	if c.LastScore() != 100 {
		t.Errorf("last score = %d, want 100", c.LastScore())
	}
	if st.p.SolarScore != 100 {
		t.Errorf("persisted solar score = %d, want 100", st.p.SolarScore)
	}
}

func TestAllWrongScoresZero(t *testing.T) {
	m, c, st := newTestModule(t, flow.ActivityWind)
	playIntro(t, m, c)

	for i := 0; i < len(m.questions); i++ {
		answerQuestion(t, m, false)
	}

	if c.LastScore() != 0 {
		t.Errorf("last score = %d, want 0", c.LastScore())
	}
	if st.p.WindScore != 0 {
		t.Errorf("persisted wind score = %d, want 0", st.p.WindScore)
	}
}

func TestEscBlockedWhileFeedbackShowing(t *testing.T) {
	m, c, _ := newTestModule(t, flow.ActivitySolar)
	playIntro(t, m, c)

	m.Update(specialKey(tea.KeyEnter)) // submit first answer
	if !m.mc.Submitted {
		t.Fatal("expected a submitted answer")
	}

	// Esc is just "any key" here: it dismisses feedback instead of leaving.
	m.Update(specialKey(tea.KeyEscape))
	if c.State().Kind != flow.KindModule {
		t.Errorf("state = %+v, want still in the module", c.State())
	}
	if m.engine.Index() != 1 {
		t.Errorf("engine index = %d, want advanced to 1", m.engine.Index())
	}
}

func TestTryAgainRestartsQuiz(t *testing.T) {
	m, c, _ := newTestModule(t, flow.ActivitySolar)
	playIntro(t, m, c)
	for i := 0; i < len(m.questions); i++ {
		answerQuestion(t, m, true)
	}

	// First results item is Try Again.
	m.Update(specialKey(tea.KeyEnter))

	if c.State().Phase != flow.PhaseQuiz {
		t.Fatalf("phase = %v, want quiz after try again", c.State().Phase)
	}
	if m.engine.Index() != 0 {
		t.Errorf("engine index = %d, want reset to 0", m.engine.Index())
	}
	if m.mc.Submitted {
		t.Error("multichoice should be rebuilt unsubmitted")
	}
}

func TestResultsWorkshopPushesGame(t *testing.T) {
	m, c, _ := newTestModule(t, flow.ActivityWind)
	playIntro(t, m, c)
	for i := 0; i < len(m.questions); i++ {
		answerQuestion(t, m, true)
	}

	m.Update(specialKey(tea.KeyDown))
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("workshop item should produce a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*workshop.WorkshopScreen); !ok {
		t.Errorf("pushed screen is %T, want the workshop", push.Screen)
	}
	if c.State().Phase != flow.PhaseResults {
		t.Error("opening the workshop must not leave the results phase")
	}
}

func TestResultsHomeRewindsFlow(t *testing.T) {
	m, c, _ := newTestModule(t, flow.ActivitySolar)
	playIntro(t, m, c)
	for i := 0; i < len(m.questions); i++ {
		answerQuestion(t, m, true)
	}

	m.Update(specialKey(tea.KeyDown))
	m.Update(specialKey(tea.KeyDown))
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("home item should produce a command")
	}
	if c.State().Kind != flow.KindHome {
		t.Errorf("state = %+v, want home", c.State())
	}
}

func TestTitleFollowsTopic(t *testing.T) {
	solar, _, _ := newTestModule(t, flow.ActivitySolar)
	wind, _, _ := newTestModule(t, flow.ActivityWind)

	if solar.Title() != "Solar Energy" {
		t.Errorf("unexpected title %q", solar.Title())
	}
	if wind.Title() != "Wind Energy" {
		t.Errorf("unexpected title %q", wind.Title())
	}
}
