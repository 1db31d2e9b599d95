package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/arturo/voltz/internal/profile"
)

// ErrNotReady is returned by Send before Initialize has completed or
// when no provider is configured.
var ErrNotReady = errors.New("chat service not ready")

const (
	purposeTalk    = "talk-to-me"
	defaultMaxTok  = 1024
	defaultTemp    = 0.7
	maxHistoryTurn = 40
)

// Service owns the Talk to Me conversation lifecycle: a session ID, the
// running transcript, and the provider doing the talking. Initialize must
// be called before Send; it completes (and Ready reports the outcome)
// whether or not a provider could be built, so the host flow never hangs
// on a missing API key.
type Service struct {
	mu       sync.Mutex
	provider Provider
	profile  func() profile.Profile

	sessionID   string
	history     []Message
	initialized bool
}

// NewService creates a Service. loadProfile supplies the learner profile
// used to personalize the system prompt; provider may be nil, in which
// case Initialize tries to discover one from the environment.
func NewService(provider Provider, loadProfile func() profile.Profile) *Service {
	return &Service{provider: provider, profile: loadProfile}
}

// Initialize prepares the service for use. When no provider was injected
// it probes the environment for API keys. Initialization always completes;
// a missing provider leaves the service not ready rather than erroring.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if s.provider == nil {
		if cfg, ok := DiscoverConfig(); ok {
			p, err := NewProvider(ctx, cfg, nil)
			if err != nil {
				return fmt.Errorf("initialize chat provider: %w", err)
			}
			s.provider = p
		}
	}

	s.sessionID = uuid.NewString()
	s.initialized = true
	return nil
}

// Ready reports whether the service is initialized with a usable provider.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized && s.provider != nil
}

// SessionID returns the current session identifier.
func (s *Service) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// ResetSession discards the transcript and starts a fresh session.
func (s *Service) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.sessionID = uuid.NewString()
}

// History returns a copy of the session transcript.
func (s *Service) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Send appends the user's message to the transcript, sends the full
// conversation to the provider, records the reply, and returns it.
// A failed call leaves the transcript without the failed turn.
func (s *Service) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	if !s.initialized || s.provider == nil {
		s.mu.Unlock()
		return "", ErrNotReady
	}

	messages := make([]Message, len(s.history), len(s.history)+1)
	copy(messages, s.history)
	messages = append(messages, Message{Role: RoleUser, Content: text})

	req := Request{
		System:      s.systemPrompt(),
		Messages:    messages,
		MaxTokens:   defaultMaxTok,
		Temperature: defaultTemp,
	}
	sessionID := s.sessionID
	provider := s.provider
	s.mu.Unlock()

	ctx = WithPurpose(ctx, purposeTalk)
	ctx = WithSessionID(ctx, sessionID)

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	reply := replyText(resp.Content)

	s.mu.Lock()
	s.history = append(s.history,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant, Content: reply},
	)
	if len(s.history) > maxHistoryTurn {
		s.history = s.history[len(s.history)-maxHistoryTurn:]
	}
	s.mu.Unlock()

	return reply, nil
}

// systemPrompt personalizes the companion with the learner's profile.
// Callers must hold s.mu.
func (s *Service) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a friendly renewable-energy learning companion for kids. ")
	b.WriteString("Keep answers short, encouraging, and grounded in real science.")

	if s.profile == nil {
		return b.String()
	}
	p := s.profile()
	if p.Name != "" {
		fmt.Fprintf(&b, " The learner's name is %s.", p.Name)
	}
	if p.Language != "" {
		fmt.Fprintf(&b, " Answer in %s.", p.Language)
	}
	if p.FavoriteTopic != "" {
		fmt.Fprintf(&b, " They are most interested in %s.", p.FavoriteTopic)
	}
	return b.String()
}

// replyText extracts plain text from a raw reply, unquoting JSON strings
// when the provider wrapped the text.
func replyText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
