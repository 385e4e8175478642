package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonCenterRight) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton9) {
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Direction returns the tile step requested this tick, or 0, 0. Moves are
// sent once per key press; the server owns movement timing.
func Direction() (dx, dy int) {
	switch {
	case justPressed(ebiten.KeyRight, ebiten.KeyD, ebiten.StandardGamepadButtonLeftRight):
		return 1, 0
	case justPressed(ebiten.KeyLeft, ebiten.KeyA, ebiten.StandardGamepadButtonLeftLeft):
		return -1, 0
	case justPressed(ebiten.KeyUp, ebiten.KeyW, ebiten.StandardGamepadButtonLeftTop):
		return 0, -1
	case justPressed(ebiten.KeyDown, ebiten.KeyS, ebiten.StandardGamepadButtonLeftBottom):
		return 0, 1
	}
	return 0, 0
}

func IsBombJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) && inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
			return true
		}
	}
	return false
}

// IsCycleColorJustPressed selects the next palette color.
func IsCycleColorJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}

func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

func justPressed(primary, alternate ebiten.Key, button ebiten.StandardGamepadButton) bool {
	if inpututil.IsKeyJustPressed(primary) || inpututil.IsKeyJustPressed(alternate) {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) && inpututil.IsStandardGamepadButtonJustPressed(g, button) {
			return true
		}
	}
	return false
}
