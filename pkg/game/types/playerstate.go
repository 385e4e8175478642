package types

import "math"

// ColorEpsilon is the per-channel threshold below which two colors are equal.
const ColorEpsilon = 0.01

// Color is an RGB color with channels in [0, 1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// Equal reports whether every channel differs by less than ColorEpsilon.
func (c Color) Equal(other Color) bool {
	return math.Abs(c.Red-other.Red) < ColorEpsilon &&
		math.Abs(c.Green-other.Green) < ColorEpsilon &&
		math.Abs(c.Blue-other.Blue) < ColorEpsilon
}

// Valid reports whether every channel is a number in [0, 1].
func (c Color) Valid() bool {
	for _, v := range []float64{c.Red, c.Green, c.Blue} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// RGBA8 returns the color as 8-bit channels.
func (c Color) RGBA8() (r, g, b uint8) {
	return channel8(c.Red), channel8(c.Green), channel8(c.Blue)
}

func channel8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Player is a player as reported in a snapshot. Players are keyed by ID.
type Player struct {
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Name  string `json:"name"`
	Alive bool   `json:"alive"`
	Ready *bool  `json:"ready,omitempty"`
	Color *Color `json:"color,omitempty"`
}

func (p Player) Copy() Player {
	newPlayer := p
	if p.Ready != nil {
		ready := *p.Ready
		newPlayer.Ready = &ready
	}
	if p.Color != nil {
		color := *p.Color
		newPlayer.Color = &color
	}
	return newPlayer
}

// IsReady treats a missing ready flag as not ready.
func (p Player) IsReady() bool {
	return p.Ready != nil && *p.Ready
}
