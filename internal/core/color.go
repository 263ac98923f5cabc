package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color names a display style. Values index into a Palette; the engine only
// ever stores the resolved RGB so rendering stays decoupled from generation.
type Color uint8

// Named colors used by tiles, entities and log messages.
const (
	ColorWhite Color = iota
	ColorDarkWall
	ColorDarkGround
	ColorLightWall
	ColorLightGround
	ColorDesaturatedGreen
	ColorDarkerGreen
	ColorDarkRed
	ColorRed
	ColorOrange
	ColorLightRed
	ColorDarkerRed
	ColorViolet
	ColorYellow
	ColorBlue
	ColorGreen
	ColorLightCyan
	ColorLightPink
	ColorLightViolet
	ColorSky
	ColorDarkerOrange
	ColorLightGreen

	colorCount
)

var colorNames = [colorCount]string{
	ColorWhite:            "white",
	ColorDarkWall:         "dark_wall",
	ColorDarkGround:       "dark_ground",
	ColorLightWall:        "light_wall",
	ColorLightGround:      "light_ground",
	ColorDesaturatedGreen: "desaturated_green",
	ColorDarkerGreen:      "darker_green",
	ColorDarkRed:          "dark_red",
	ColorRed:              "red",
	ColorOrange:           "orange",
	ColorLightRed:         "light_red",
	ColorDarkerRed:        "darker_red",
	ColorViolet:           "violet",
	ColorYellow:           "yellow",
	ColorBlue:             "blue",
	ColorGreen:            "green",
	ColorLightCyan:        "light_cyan",
	ColorLightPink:        "light_pink",
	ColorLightViolet:      "light_violet",
	ColorSky:              "sky",
	ColorDarkerOrange:     "darker_orange",
	ColorLightGreen:       "light_green",
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor looks up a color by its configuration name.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a #rrggbb (or rrggbb) string.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

var defaultRGB = [colorCount]RGB{
	ColorWhite:            {255, 255, 255},
	ColorDarkWall:         {0, 0, 100},
	ColorDarkGround:       {50, 50, 150},
	ColorLightWall:        {130, 110, 50},
	ColorLightGround:      {200, 180, 50},
	ColorDesaturatedGreen: {63, 127, 63},
	ColorDarkerGreen:      {0, 127, 0},
	ColorDarkRed:          {191, 0, 0},
	ColorRed:              {255, 0, 0},
	ColorOrange:           {255, 127, 0},
	ColorLightRed:         {255, 114, 114},
	ColorDarkerRed:        {127, 0, 0},
	ColorViolet:           {127, 0, 255},
	ColorYellow:           {255, 255, 0},
	ColorBlue:             {0, 0, 255},
	ColorGreen:            {0, 255, 0},
	ColorLightCyan:        {114, 255, 255},
	ColorLightPink:        {255, 114, 184},
	ColorLightViolet:      {184, 114, 255},
	ColorSky:              {0, 191, 255},
	ColorDarkerOrange:     {127, 63, 0},
	ColorLightGreen:       {114, 255, 114},
}

// Palette is an immutable color table indexed by Color.
// Build it once at startup and pass it to every component that styles output.
type Palette struct {
	rgb [colorCount]RGB
}

// DefaultPalette returns the built-in color table.
func DefaultPalette() *Palette {
	return &Palette{rgb: defaultRGB}
}

// NewPalette builds a palette from the defaults with named overrides applied.
// Keys are color names (see Color.String), values are #rrggbb strings.
func NewPalette(overrides map[string]string) (*Palette, error) {
	p := DefaultPalette()
	for name, hex := range overrides {
		c, ok := ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		rgb, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		p.rgb[c] = rgb
	}
	return p, nil
}

// Get returns the RGB value for a color. Unknown colors resolve to white.
func (p *Palette) Get(c Color) RGB {
	if p == nil || c >= colorCount {
		return defaultRGB[ColorWhite]
	}
	return p.rgb[c]
}
