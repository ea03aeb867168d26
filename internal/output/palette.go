package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// MaxLevel is the highest density level the palette can paint.
const MaxLevel = 4

// levelRates scale the shade for levels 1..MaxLevel.
var levelRates = [MaxLevel]float64{1, 0.7, 0.4, 0.2}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// ParseShade parses "R;G;B" with each component in 0..255.
func ParseShade(s string) (RGB, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid shade %q (expected R;G;B)", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("invalid shade %q: component %q must be 0..255", s, p)
		}
		v[i] = n
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// Scale multiplies every component by rate, truncating.
func (c RGB) Scale(rate float64) RGB {
	return RGB{R: int(float64(c.R) * rate), G: int(float64(c.G) * rate), B: int(float64(c.B) * rate)}
}

func (c RGB) String() string {
	return fmt.Sprintf("%d;%d;%d", c.R, c.G, c.B)
}

// Palette paints text by density level.
type Palette struct {
	levels [MaxLevel + 1]*color.Color
}

// NewPalette builds the level colors: bold for level 0, then the shade at decreasing intensity.
func NewPalette(shade RGB, enabled bool) *Palette {
	p := &Palette{}
	p.levels[0] = color.New(color.Bold)
	for i, rate := range levelRates {
		c := shade.Scale(rate)
		p.levels[i+1] = color.RGB(c.R, c.G, c.B)
	}
	for _, c := range p.levels {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Paint colors s for level. Levels outside 0..MaxLevel are clamped.
func (p *Palette) Paint(level int, s string) string {
	level = max(0, min(level, MaxLevel))
	return p.levels[level].Sprint(s)
}
