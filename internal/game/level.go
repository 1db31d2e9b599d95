package game

// Level is one timed challenge configuration: a target arc on the dial, a
// flavor parameter shown to the player, and the efficiency needed to clear
// it. RangeStart/RangeEnd are degrees on a 360° circle and may wrap
// (e.g. 350 → 10).
type Level struct {
	Number     int
	RangeStart float64
	RangeEnd   float64
	Param      string
	Target     float64
}

// Midpoint returns the center of the level's target arc, wrap-aware:
// the arc runs clockwise from RangeStart to RangeEnd.
func (l Level) Midpoint() float64 {
	span := WrapAngle(l.RangeEnd - l.RangeStart)
	return WrapAngle(l.RangeStart + span/2)
}

// SolarLevels is the fixed level list for the solar panel game. The
// parameter is the season driving the sun's arc.
func SolarLevels() []Level {
	return []Level{
		{Number: 1, RangeStart: 60, RangeEnd: 120, Param: "Spring", Target: 60},
		{Number: 2, RangeStart: 80, RangeEnd: 100, Param: "Summer", Target: 65},
		{Number: 3, RangeStart: 45, RangeEnd: 90, Param: "Autumn", Target: 70},
		{Number: 4, RangeStart: 30, RangeEnd: 60, Param: "Winter", Target: 75},
		{Number: 5, RangeStart: 350, RangeEnd: 10, Param: "Equinox", Target: 80},
	}
}

// WindLevels is the fixed level list for the wind turbine game. The
// parameter is the wind strength.
func WindLevels() []Level {
	return []Level{
		{Number: 1, RangeStart: 45, RangeEnd: 90, Param: "Light breeze", Target: 60},
		{Number: 2, RangeStart: 120, RangeEnd: 180, Param: "Moderate wind", Target: 65},
		{Number: 3, RangeStart: 200, RangeEnd: 260, Param: "Fresh wind", Target: 70},
		{Number: 4, RangeStart: 280, RangeEnd: 340, Param: "Strong wind", Target: 75},
		{Number: 5, RangeStart: 350, RangeEnd: 20, Param: "Gale", Target: 80},
	}
}
