package profile

import (
	"strings"
	"time"
)

// TimestampLayout is the second-precision format used for LastLogin.
const TimestampLayout = "2006-01-02 15:04:05"

// Profile is the single persisted record of a learner's onboarding answers
// and per-topic scores. Score fields hold the last score achieved for that
// topic, not a running total.
type Profile struct {
	Language           string `json:"language"`
	Name               string `json:"name"`
	FavoriteTopic      string `json:"favoriteTopic"`
	Motivation         string `json:"motivation"`
	SolarScore         int    `json:"solarScore"`
	WindScore          int    `json:"windEnergyScore"`
	CustomProjectScore int    `json:"customProjectScore"`
	LoginCount         int    `json:"loginCount"`
	LastLogin          string `json:"lastLoginDate"`
}

// Default returns an all-default profile, as created on first run.
func Default() Profile {
	return Profile{}
}

// Registered reports whether the learner has completed onboarding:
// both name and language must be non-blank after trimming.
func (p Profile) Registered() bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Language) != ""
}

// MergeOnboarding writes the four onboarding answers (trimmed) onto the
// profile, leaving scores and login tracking untouched.
func (p Profile) MergeOnboarding(language, name, topic, motivation string) Profile {
	p.Language = strings.TrimSpace(language)
	p.Name = strings.TrimSpace(name)
	p.FavoriteTopic = strings.TrimSpace(topic)
	p.Motivation = strings.TrimSpace(motivation)
	return p
}

// Topic identifies a scored learning module.
type Topic string

const (
	TopicSolar         Topic = "solar"
	TopicWind          Topic = "wind"
	TopicCustomProject Topic = "custom-project"
)

// WithScore overwrites the score for the given topic. Scores replace the
// previous value; they never accumulate.
func (p Profile) WithScore(topic Topic, score int) Profile {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	switch topic {
	case TopicSolar:
		p.SolarScore = score
	case TopicWind:
		p.WindScore = score
	case TopicCustomProject:
		p.CustomProjectScore = score
	}
	return p
}

// Score returns the stored score for the given topic.
func (p Profile) Score(topic Topic) int {
	switch topic {
	case TopicSolar:
		return p.SolarScore
	case TopicWind:
		return p.WindScore
	case TopicCustomProject:
		return p.CustomProjectScore
	}
	return 0
}

// WithLogin increments the login counter and stamps the login time.
func (p Profile) WithLogin(now time.Time) Profile {
	p.LoginCount++
	p.LastLogin = now.Format(TimestampLayout)
	return p
}
