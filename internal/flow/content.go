package flow

import "github.com/arturo/voltz/internal/profile"

var solarIntro = []string{
	"The sun delivers more energy to Earth in one hour than the whole world uses in a year. Solar panels capture a slice of it.",
	"Inside every panel, photovoltaic cells turn light directly into electricity. No moving parts, no fuel, no smoke.",
	"Alignment is everything: a panel facing the sun squarely produces far more power than one pointing away. That is what the workshop game is about.",
}

var windIntro = []string{
	"Wind is air set in motion by the sun heating the planet unevenly. A turbine turns that motion into electricity.",
	"The blades work like airplane wings: moving air creates lift, the rotor spins, and a generator does the rest.",
	"Turbines constantly rotate to face the wind. Keeping the rotor aligned is the difference between a trickle and full power.",
}

// IntroPages returns the walkthrough pages for a topic module.
func IntroPages(topic profile.Topic) []string {
	switch topic {
	case profile.TopicSolar:
		return solarIntro
	case profile.TopicWind:
		return windIntro
	}
	return nil
}
