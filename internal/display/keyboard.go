package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/spaceshooter/internal/input"
)

// ReadKeyboard samples the keyboard for one tick. Space fires once per press.
func ReadKeyboard() input.Snapshot {
	return input.Snapshot{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Shoot: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
