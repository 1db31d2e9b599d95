package chat

import (
	"context"
	"encoding/json"
	"testing"
)

func TestGuidedSession_OfflineDeterministicScore(t *testing.T) {
	run := func() ProjectTurn {
		g := NewGuidedSession(nil, StubScorer{}, "Backyard windmill")
		var turn ProjectTurn
		var err error
		for i := 0; i < 10 && !turn.Done; i++ {
			turn, err = g.Step(context.Background(), "my answer")
			if err != nil {
				t.Fatalf("step: %v", err)
			}
		}
		return turn
	}

	first := run()
	second := run()

	if !first.Done {
		t.Fatal("offline session must finish")
	}
	if first.Score != second.Score {
		t.Fatalf("stub score not deterministic: %d vs %d", first.Score, second.Score)
	}
	if first.Score < 0 || first.Score > 100 {
		t.Fatalf("score out of range: %d", first.Score)
	}
}

func TestGuidedSession_OfflineAsksBeforeFinishing(t *testing.T) {
	g := NewGuidedSession(nil, StubScorer{}, "Solar oven")

	turn, err := g.Step(context.Background(), "I want to build a solar oven")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if turn.Done {
		t.Fatal("first turn must not finish the session")
	}
	if turn.Reply == "" {
		t.Fatal("expected a guiding prompt")
	}
}

func TestGuidedSession_ProviderEnvelope(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"reply":"what will it power?","done":false,"score":0}`)},
		MockResponse{Content: json.RawMessage(`{"reply":"great plan!","done":true,"score":85}`)},
	)
	g := NewGuidedSession(mock, StubScorer{}, "Micro hydro")

	turn, err := g.Step(context.Background(), "a water wheel in the creek")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if turn.Done || turn.Reply != "what will it power?" {
		t.Fatalf("unexpected turn: %+v", turn)
	}

	turn, err = g.Step(context.Background(), "the garden lights")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !turn.Done || turn.Score != 85 {
		t.Fatalf("unexpected final turn: %+v", turn)
	}

	// Every provider call must request the structured envelope and carry
	// the running history.
	for _, call := range mock.Calls {
		if call.Schema == nil || call.Schema.Name != "project-turn" {
			t.Fatal("expected project-turn schema on every call")
		}
	}
	if len(mock.Calls[1].Messages) != 3 {
		t.Fatalf("second call carried %d messages, want 3", len(mock.Calls[1].Messages))
	}
}

func TestGuidedSession_ProviderErrorSurfaces(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	g := NewGuidedSession(mock, StubScorer{}, "Wind chime generator")

	if _, err := g.Step(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	if g.Turns() != 0 {
		t.Fatal("failed turn must not count")
	}
}

func TestStubScorerRange(t *testing.T) {
	for _, name := range []string{"", "a", "Backyard windmill", "Solar oven", "x y z"} {
		s := StubScorer{}.ProjectScore(name)
		if s < 60 || s > 100 {
			t.Errorf("ProjectScore(%q) = %d, want 60-100", name, s)
		}
	}
}
