package quiz

// SolarQuestions is the fixed question set for the solar energy module.
func SolarQuestions() []Question {
	return []Question{
		{
			Text:   "What does a solar panel convert sunlight into?",
			Answer: "Electricity",
			Options: []string{
				"Electricity", "Steam", "Heat only", "Sound",
			},
		},
		{
			Text:   "Which part of a solar panel absorbs light?",
			Answer: "Photovoltaic cells",
			Options: []string{
				"The frame", "Photovoltaic cells", "The wiring", "The glass cover",
			},
		},
		{
			Text:   "When do solar panels produce the most power?",
			Answer: "When facing the sun directly",
			Options: []string{
				"At night", "When facing the sun directly", "On cloudy days", "When it is cold",
			},
		},
		{
			Text:   "What is a group of connected solar panels called?",
			Answer: "A solar array",
			Options: []string{
				"A solar array", "A sun farm", "A light grid", "A panel pack",
			},
		},
		{
			Text:   "Why do some solar panels tilt during the day?",
			Answer: "To follow the sun's position",
			Options: []string{
				"To shake off dust", "To cool down", "To follow the sun's position", "To avoid wind",
			},
		},
	}
}

// WindQuestions is the fixed question set for the wind energy module.
func WindQuestions() []Question {
	return []Question{
		{
			Text:   "What does a wind turbine convert wind into?",
			Answer: "Electricity",
			Options: []string{
				"Electricity", "Rain", "Pressure", "Heat",
			},
		},
		{
			Text:   "Which part of a turbine catches the wind?",
			Answer: "The blades",
			Options: []string{
				"The tower", "The blades", "The cables", "The foundation",
			},
		},
		{
			Text:   "Why do turbines rotate to face the wind?",
			Answer: "To capture the most energy",
			Options: []string{
				"To capture the most energy", "To look uniform", "To reduce noise", "To stay balanced",
			},
		},
		{
			Text:   "What is a group of wind turbines called?",
			Answer: "A wind farm",
			Options: []string{
				"A wind park", "A turbine field", "A wind farm", "An air station",
			},
		},
		{
			Text:   "What happens when the wind is too strong?",
			Answer: "Turbines shut down for safety",
			Options: []string{
				"Turbines spin faster forever", "Turbines shut down for safety", "Blades grow longer", "Nothing changes",
			},
		},
	}
}
