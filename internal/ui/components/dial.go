package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arturo/voltz/internal/ui/theme"
)

// Dial renders a circular alignment gauge for the workshop games.
// Angle 0 points up and increases clockwise, matching the game math.
type Dial struct {
	Radius int
}

// NewDial creates a dial with the given character radius.
func NewDial(radius int) Dial {
	if radius < 4 {
		radius = 4
	}
	return Dial{Radius: radius}
}

// View renders the dial with the user needle and the driven marker.
func (d Dial) View(userAngle, drivenAngle float64) string {
	r := d.Radius
	// Terminal cells are roughly twice as tall as wide, so the x axis
	// is stretched by 2 to keep the dial round.
	w := 4*r + 1
	h := 2*r + 1

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	plot := func(angle float64, dist float64, ch rune) (int, int) {
		rad := (angle - 90) * math.Pi / 180
		x := 2*r + int(math.Round(2*dist*math.Cos(rad)))
		y := r + int(math.Round(dist*math.Sin(rad)))
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = ch
		}
		return x, y
	}

	// Rim ticks every 30 degrees.
	for a := 0.0; a < 360; a += 30 {
		plot(a, float64(r), '·')
	}
	// Cardinal marks.
	plot(0, float64(r), 'N')

	// Driven marker just inside the rim.
	plot(drivenAngle, float64(r)-1, '◆')

	// User needle from center outward.
	for dist := 1.0; dist < float64(r)-1; dist++ {
		plot(userAngle, dist, '█')
	}
	grid[r][2*r] = '+'

	lines := make([]string, h)
	for y := range grid {
		lines[y] = string(grid[y])
	}

	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(strings.Join(lines, "\n"))
}
