package scene

import (
	"fmt"
	"image/color"
	"strings"
)

// ColorTheme selects the palette used for a scene.
type ColorTheme int

const (
	ThemeLight ColorTheme = iota
	ThemeDark
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemeLight: "Light",
	ThemeDark:  "Dark",
}

func (t ColorTheme) String() string {
	if name, ok := ThemeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ColorTheme(%d)", int(t))
}

// Next cycles to the following theme.
func (t ColorTheme) Next() ColorTheme {
	return (t + 1) % ColorTheme(len(ThemeNames))
}

// ParseTheme resolves a theme by case-insensitive name.
func ParseTheme(name string) (ColorTheme, error) {
	for t, n := range ThemeNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return ThemeLight, fmt.Errorf("unknown theme %q", name)
}

// Palette holds every color a scene uses.
type Palette struct {
	Background    color.NRGBA
	Wall          color.NRGBA
	DoorFill      color.NRGBA
	WindowFill    color.NRGBA
	FixtureStroke color.NRGBA
	Label         color.NRGBA
	Dimension     color.NRGBA
	Unaligned     color.NRGBA
}

var (
	black     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	brown     = color.NRGBA{R: 165, G: 42, B: 42, A: 255}
	lightBlue = color.NRGBA{R: 173, G: 216, B: 230, A: 255}
)

var palettes = map[ColorTheme]Palette{
	ThemeLight: {
		Background:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Wall:          black,
		DoorFill:      brown,
		WindowFill:    lightBlue,
		FixtureStroke: black,
		Label:         black,
		Dimension:     color.NRGBA{R: 90, G: 90, B: 90, A: 255},
		Unaligned:     color.NRGBA{R: 220, G: 40, B: 40, A: 255},
	},
	ThemeDark: {
		Background:    color.NRGBA{R: 30, G: 32, B: 36, A: 255},
		Wall:          color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		DoorFill:      color.NRGBA{R: 196, G: 112, B: 72, A: 255},
		WindowFill:    lightBlue,
		FixtureStroke: color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		Label:         color.NRGBA{R: 242, G: 237, B: 161, A: 255},
		Dimension:     color.NRGBA{R: 150, G: 150, B: 150, A: 255},
		Unaligned:     color.NRGBA{R: 255, G: 90, B: 90, A: 255},
	},
}

// GetPalette returns the palette for a theme, falling back to light.
func GetPalette(t ColorTheme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}
