package chat

import (
	"context"
	"encoding/json"
	"strings"
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

func newTestChat(t *testing.T, provider chat.Provider) (*ChatScreen, *flow.Controller, *chat.Service) {
	t.Helper()

	// Keep Initialize from discovering a real provider from the host env.
	for _, key := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(key, "")
	}

	st := &memStore{p: profile.Profile{Language: "English", Name: "Ana"}}
	c := flow.NewController(st)
	if err := c.ContinueLearning(); err != nil {
		t.Fatalf("ContinueLearning: %v", err)
	}
	if err := c.ChooseActivity(flow.ActivityTalkToMe); err != nil {
		t.Fatalf("ChooseActivity: %v", err)
	}

	svc := chat.NewService(provider, st.Load)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return New(c, svc), c, svc
}

func TestTabCycles(t *testing.T) {
	s, _, _ := newTestChat(t, nil)

	if s.active != tabChat {
		t.Fatal("chat tab should be active first")
	}
	s.Update(specialKey(tea.KeyTab))
	if s.active != tabImage {
		t.Errorf("active = %v, want image tab", s.active)
	}
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.active != tabChat {
		t.Errorf("active = %v, want wrapped back to chat", s.active)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.active != tabAudio {
		t.Errorf("active = %v, want audio via shift+tab", s.active)
	}
}

func TestSendWaitsAndReplyClears(t *testing.T) {
	mock := chat.NewMockProvider(chat.MockResponse{Content: json.RawMessage(`"The sun!"`)})
	s, _, svc := newTestChat(t, mock)

	s.input.Model.SetValue("What powers solar panels?")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("sending should produce a command")
	}
	if !s.waiting {
		t.Error("screen should be waiting on the reply")
	}

	// Run the exchange the async command would perform.
	reply, err := svc.Send(context.Background(), "What powers solar panels?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	s.Update(replyMsg{reply: reply})

	if s.waiting {
		t.Error("reply should clear the waiting flag")
	}
	hist := svc.History()
	if len(hist) != 2 || hist[1].Content != "The sun!" {
		t.Errorf("history = %+v", hist)
	}
}

func TestBlankInputNotSent(t *testing.T) {
	s, _, _ := newTestChat(t, nil)

	s.input.Model.SetValue("   ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("blank input must not produce a command")
	}
	if s.waiting {
		t.Error("blank input must not start a wait")
	}
}

func TestEnterIgnoredOnPlaceholderTabs(t *testing.T) {
	s, _, _ := newTestChat(t, nil)

	s.Update(specialKey(tea.KeyTab))
	s.input.Model.SetValue("hello")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("enter on the image tab must not send")
	}
}

func TestSendErrorShown(t *testing.T) {
	s, _, _ := newTestChat(t, nil)

	s.input.Model.SetValue("hi")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(replyMsg{err: chat.ErrNotReady})

	if s.errMsg == "" {
		t.Error("a failed exchange should surface its error")
	}
	if s.waiting {
		t.Error("an error should clear the waiting flag")
	}
}

func TestCtrlRResetsSession(t *testing.T) {
	mock := chat.NewMockProvider(chat.MockResponse{Content: json.RawMessage(`"hi"`)})
	s, _, svc := newTestChat(t, mock)

	if _, err := svc.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	before := svc.SessionID()

	s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if len(svc.History()) != 0 {
		t.Error("ctrl+r should discard the transcript")
	}
	if svc.SessionID() == before {
		t.Error("ctrl+r should start a fresh session")
	}
}

func TestEscReturnsToActivities(t *testing.T) {
	s, c, _ := newTestChat(t, nil)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
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

func TestViewHintsWhenNotReady(t *testing.T) {
	s, _, _ := newTestChat(t, nil)

	view := s.View(100, 30)
	if !strings.Contains(view, "No AI provider is configured.") {
		t.Error("view should explain the missing provider")
	}
}
