package flow

import (
	"errors"
	"strings"

	"github.com/arturo/voltz/internal/profile"
)

var (
	// ErrBlankField blocks Next while the current onboarding field is
	// empty after trimming.
	ErrBlankField = errors.New("field must not be blank")

	// ErrInvalidTransition is returned for an action that the current
	// state does not allow.
	ErrInvalidTransition = errors.New("invalid flow transition")
)

// ProfileStore is the persistence surface the controller drives. Satisfied
// by *store.ProfileStore.
type ProfileStore interface {
	Load() profile.Profile
	Save(p profile.Profile) error
	Registered() bool
	Clear() error
}

// Controller owns the learning-flow state machine: onboarding wizard →
// home → activity selection → per-topic module → quiz → results. It holds
// the transient input fields and delegates persistence to the ProfileStore;
// every transition happens through a named method, so the whole graph is
// testable without any rendering.
type Controller struct {
	store ProfileStore
	state State

	// Onboarding answers, kept until the user confirms or restarts.
	answers [4]string

	projectName string
	quizToken   int
	lastScore   int
}

// NewController creates a Controller starting at Home for a registered
// profile, or at the top of the onboarding wizard otherwise.
func NewController(store ProfileStore) *Controller {
	c := &Controller{store: store}
	if store.Registered() {
		c.state = homeState()
	} else {
		c.state = onboardingState()
	}
	return c
}

// State returns the current flow position.
func (c *Controller) State() State { return c.state }

// Profile returns the persisted profile.
func (c *Controller) Profile() profile.Profile { return c.store.Load() }

// QuizToken is the reset token for the active module's quiz session; it
// changes on TryAgain.
func (c *Controller) QuizToken() int { return c.quizToken }

// LastScore returns the most recent module score, for the results phase.
func (c *Controller) LastScore() int { return c.lastScore }

// ProjectName returns the custom project name entered so far.
func (c *Controller) ProjectName() string { return c.projectName }

// --- Onboarding -----------------------------------------------------------

// Answer returns the collected input for an onboarding step.
func (c *Controller) Answer(step OnboardStep) string {
	if step < StepLanguage || step > StepMotivation {
		return ""
	}
	return c.answers[step]
}

// SetAnswer records input for an onboarding step without advancing.
func (c *Controller) SetAnswer(step OnboardStep, value string) {
	if step < StepLanguage || step > StepMotivation {
		return
	}
	c.answers[step] = value
}

// Next advances the onboarding wizard one step. It is blocked while the
// current field is blank after trimming.
func (c *Controller) Next() error {
	if c.state.Kind != KindOnboarding || c.state.Step >= StepConfirm {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(c.answers[c.state.Step]) == "" {
		return ErrBlankField
	}
	c.state.Step++
	return nil
}

// Back returns to the previous onboarding step, preserving all collected
// input. At the first step it is a no-op.
func (c *Controller) Back() {
	if c.state.Kind != KindOnboarding || c.state.Step == StepLanguage {
		return
	}
	c.state.Step--
}

// RestartOnboarding returns from the confirmation step to the first step
// for re-editing; collected answers are preserved.
func (c *Controller) RestartOnboarding() error {
	if c.state.Kind != KindOnboarding || c.state.Step != StepConfirm {
		return ErrInvalidTransition
	}
	c.state.Step = StepLanguage
	return nil
}

// ConfirmOnboarding trims the four collected fields, merges them onto the
// existing profile (scores untouched), persists, and moves to Home.
func (c *Controller) ConfirmOnboarding() error {
	if c.state.Kind != KindOnboarding || c.state.Step != StepConfirm {
		return ErrInvalidTransition
	}
	for _, a := range c.answers {
		if strings.TrimSpace(a) == "" {
			return ErrBlankField
		}
	}

	p := c.store.Load().MergeOnboarding(
		c.answers[StepLanguage],
		c.answers[StepName],
		c.answers[StepTopic],
		c.answers[StepMotivation],
	)
	if err := c.store.Save(p); err != nil {
		return err
	}
	c.state = homeState()
	return nil
}

// ResetProfile clears all persisted state and forces re-onboarding.
func (c *Controller) ResetProfile() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.answers = [4]string{}
	c.projectName = ""
	c.state = onboardingState()
	return nil
}

// --- Home / activity selection -------------------------------------------

// ContinueLearning moves from Home to the activity selection menu. Only a
// registered profile may proceed.
func (c *Controller) ContinueLearning() error {
	if c.state.Kind != KindHome || !c.store.Registered() {
		return ErrInvalidTransition
	}
	c.state = activitySelectState()
	return nil
}

// ChooseActivity enters the chosen module. The choice itself is transient
// and never persisted.
func (c *Controller) ChooseActivity(a Activity) error {
	if c.state.Kind != KindActivitySelect {
		return ErrInvalidTransition
	}
	switch a {
	case ActivitySolar:
		c.state = State{Kind: KindModule, Topic: profile.TopicSolar, Phase: PhaseIntro}
	case ActivityWind:
		c.state = State{Kind: KindModule, Topic: profile.TopicWind, Phase: PhaseIntro}
	case ActivityCustomProject:
		c.state = State{Kind: KindCustomProject, Project: ProjectNameEntry}
	case ActivityTalkToMe:
		c.state = State{Kind: KindTalkToMe}
	default:
		return ErrInvalidTransition
	}
	return nil
}

// BackToActivities leaves the chat surface (or a module entry) for the
// activity menu.
func (c *Controller) BackToActivities() error {
	switch c.state.Kind {
	case KindTalkToMe, KindModule, KindCustomProject:
		c.state = activitySelectState()
		return nil
	}
	return ErrInvalidTransition
}

// GoHome returns to the home screen from the activity menu or a module's
// results phase.
func (c *Controller) GoHome() error {
	switch {
	case c.state.Kind == KindActivitySelect:
	case c.state.Kind == KindModule && c.state.Phase == PhaseResults:
	case c.state.Kind == KindCustomProject && c.state.Project == ProjectResults:
	default:
		return ErrInvalidTransition
	}
	c.state = homeState()
	return nil
}

// --- Topic modules --------------------------------------------------------

// AdvanceIntro pages through the module walkthrough; past the last page it
// enters the quiz phase.
func (c *Controller) AdvanceIntro() error {
	if c.state.Kind != KindModule || c.state.Phase != PhaseIntro {
		return ErrInvalidTransition
	}
	if c.state.IntroPage < len(IntroPages(c.state.Topic))-1 {
		c.state.IntroPage++
		return nil
	}
	c.state.Phase = PhaseQuiz
	return nil
}

// FinishQuiz records the final quiz score: it merges the topic score into
// the profile, persists, and enters the results phase. This is the single
// synchronization point between the flow and persisted state besides
// onboarding confirmation.
func (c *Controller) FinishQuiz(score int) error {
	if c.state.Kind != KindModule || c.state.Phase != PhaseQuiz {
		return ErrInvalidTransition
	}
	p := c.store.Load().WithScore(c.state.Topic, score)
	if err := c.store.Save(p); err != nil {
		return err
	}
	c.lastScore = score
	c.state.Phase = PhaseResults
	return nil
}

// TryAgain restarts the module quiz in place with a fresh session.
func (c *Controller) TryAgain() error {
	if c.state.Kind != KindModule || c.state.Phase != PhaseResults {
		return ErrInvalidTransition
	}
	c.quizToken++
	c.state.Phase = PhaseQuiz
	return nil
}

// --- Custom project -------------------------------------------------------

// SetProjectName records the project name input without advancing.
func (c *Controller) SetProjectName(name string) {
	c.projectName = name
}

// StartProject moves from name entry to the guided learning loop; blocked
// while the name is blank after trimming.
func (c *Controller) StartProject() error {
	if c.state.Kind != KindCustomProject || c.state.Project != ProjectNameEntry {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(c.projectName) == "" {
		return ErrBlankField
	}
	c.projectName = strings.TrimSpace(c.projectName)
	c.state.Project = ProjectGuided
	return nil
}

// FinishProject records the guided-learning completion score and enters
// the project results phase, persisting like any other module.
func (c *Controller) FinishProject(score int) error {
	if c.state.Kind != KindCustomProject || c.state.Project != ProjectGuided {
		return ErrInvalidTransition
	}
	p := c.store.Load().WithScore(profile.TopicCustomProject, score)
	if err := c.store.Save(p); err != nil {
		return err
	}
	c.lastScore = score
	c.state.Project = ProjectResults
	return nil
}
