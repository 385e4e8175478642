package identity

import gametypes "github.com/cbodonnell/bomberman/pkg/game/types"

// Palette is the set of colors offered by the settings screen.
var Palette = []gametypes.Color{
	{Red: 1, Green: 0, Blue: 0},      // red
	{Red: 0, Green: 1, Blue: 1},      // cyan
	{Red: 0, Green: 1, Blue: 0},      // green
	{Red: 1, Green: 1, Blue: 0},      // yellow
	{Red: 1, Green: 0.5, Blue: 0},    // orange
	{Red: 0, Green: 0, Blue: 1},      // blue
	{Red: 0.5, Green: 0, Blue: 0.5},  // purple
	{Red: 1, Green: 0.75, Blue: 0.8}, // pink
	{Red: 1, Green: 1, Blue: 1},      // white
}

// PaletteIndex returns the index of the palette entry equal to c, or 0.
func PaletteIndex(c gametypes.Color) int {
	for i, p := range Palette {
		if p.Equal(c) {
			return i
		}
	}
	return 0
}

// NextPaletteColor cycles to the palette entry after c.
func NextPaletteColor(c gametypes.Color) gametypes.Color {
	return Palette[(PaletteIndex(c)+1)%len(Palette)]
}
