package flow

import "github.com/arturo/voltz/internal/profile"

// Kind is the top-level position in the learning journey.
type Kind int

const (
	KindHome Kind = iota
	KindOnboarding
	KindActivitySelect
	KindModule
	KindCustomProject
	KindTalkToMe
)

// OnboardStep is a step of the onboarding wizard.
type OnboardStep int

const (
	StepLanguage OnboardStep = iota
	StepName
	StepTopic
	StepMotivation
	StepConfirm
)

// ModulePhase is a phase within a topic module.
type ModulePhase int

const (
	PhaseIntro ModulePhase = iota
	PhaseQuiz
	PhaseResults
)

// ProjectPhase is a phase within the custom project module.
type ProjectPhase int

const (
	ProjectNameEntry ProjectPhase = iota
	ProjectGuided
	ProjectResults
)

// Activity is a choice on the activity selection menu.
type Activity int

const (
	ActivitySolar Activity = iota
	ActivityWind
	ActivityCustomProject
	ActivityTalkToMe
)

// State is the full tagged position of the learning flow. Only the fields
// relevant to Kind are meaningful.
type State struct {
	Kind Kind

	// Onboarding.
	Step OnboardStep

	// Topic module.
	Topic     profile.Topic
	Phase     ModulePhase
	IntroPage int

	// Custom project.
	Project ProjectPhase
}

func homeState() State           { return State{Kind: KindHome} }
func onboardingState() State     { return State{Kind: KindOnboarding, Step: StepLanguage} }
func activitySelectState() State { return State{Kind: KindActivitySelect} }
