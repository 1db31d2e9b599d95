package onboarding

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/arturo/voltz/internal/flow"
	"github.com/arturo/voltz/internal/profile"
	"github.com/arturo/voltz/internal/router"
	"github.com/arturo/voltz/internal/screen"
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

// stubScreen stands in for the home screen built after confirmation.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestWizard() (*OnboardingScreen, *flow.Controller, *memStore, *int) {
	st := &memStore{}
	c := flow.NewController(st)
	homeCalls := 0
	o := New(c, func() screen.Screen {
		homeCalls++
		return &stubScreen{}
	})
	return o, c, st, &homeCalls
}

// enterAnswer types a value into the active field and presses enter.
func enterAnswer(o *OnboardingScreen, value string) tea.Cmd {
	o.input.Model.SetValue(value)
	_, cmd := o.Update(specialKey(tea.KeyEnter))
	return cmd
}

func fillWizard(t *testing.T, o *OnboardingScreen, c *flow.Controller) {
	t.Helper()
	answers := []string{"English", "Ana", "Solar", "a solar car"}
	for _, a := range answers {
		enterAnswer(o, a)
	}
	if c.State().Step != flow.StepConfirm {
		t.Fatalf("step = %v, want confirm after four answers", c.State().Step)
	}
}

func TestBlankAnswerBlocked(t *testing.T) {
	o, c, _, _ := newTestWizard()

	enterAnswer(o, "   ")
	if c.State().Step != flow.StepLanguage {
		t.Errorf("step = %v, want still at language entry", c.State().Step)
	}
	if !o.errBlank {
		t.Error("blank submit should raise the inline error")
	}

	// A valid answer clears it.
	enterAnswer(o, "English")
	if o.errBlank {
		t.Error("error should clear when the step advances")
	}
	if c.State().Step != flow.StepName {
		t.Errorf("step = %v, want name entry", c.State().Step)
	}
}

func TestWizardWalkReachesConfirm(t *testing.T) {
	o, c, _, _ := newTestWizard()
	fillWizard(t, o, c)

	for step, want := range map[flow.OnboardStep]string{
		flow.StepLanguage:   "English",
		flow.StepName:       "Ana",
		flow.StepTopic:      "Solar",
		flow.StepMotivation: "a solar car",
	} {
		if got := c.Answer(step); got != want {
			t.Errorf("answer[%v] = %q, want %q", step, got, want)
		}
	}
}

func TestEscGoesBackWithPrefill(t *testing.T) {
	o, c, _, _ := newTestWizard()
	enterAnswer(o, "English")

	o.Update(specialKey(tea.KeyEscape))
	if c.State().Step != flow.StepLanguage {
		t.Fatalf("step = %v, want back at language entry", c.State().Step)
	}
	if o.input.Value() != "English" {
		t.Errorf("input = %q, want the earlier answer prefilled", o.input.Value())
	}
}

func TestEscAtFirstStepIsNoop(t *testing.T) {
	o, c, _, _ := newTestWizard()

	o.Update(specialKey(tea.KeyEscape))
	if c.State().Step != flow.StepLanguage {
		t.Errorf("step = %v, want unchanged", c.State().Step)
	}
}

func TestConfirmPersistsAndReplacesScreen(t *testing.T) {
	o, c, st, homeCalls := newTestWizard()
	fillWizard(t, o, c)

	_, cmd := o.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("confirm should produce a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*stubScreen); !ok {
		t.Errorf("replacement screen is %T, want the home stub", msg.Screen)
	}
	if *homeCalls != 1 {
		t.Errorf("home factory called %d times, want 1", *homeCalls)
	}

	if !st.p.Registered() {
		t.Error("confirm should persist a registered profile")
	}
	if st.p.Name != "Ana" || st.p.Language != "English" {
		t.Errorf("persisted profile = %+v", st.p)
	}
	if c.State().Kind != flow.KindHome {
		t.Errorf("state = %+v, want home", c.State())
	}
}

func TestEditFromConfirmPreservesAnswers(t *testing.T) {
	o, c, _, _ := newTestWizard()
	fillWizard(t, o, c)

	o.Update(keyPress('e'))
	if c.State().Step != flow.StepLanguage {
		t.Fatalf("step = %v, want back at language entry", c.State().Step)
	}
	if o.input.Value() != "English" {
		t.Errorf("input = %q, want the earlier answer prefilled", o.input.Value())
	}
	if c.Answer(flow.StepMotivation) != "a solar car" {
		t.Error("editing must preserve later answers")
	}
}
