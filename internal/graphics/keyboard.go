package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio/internal/input"
	"portfolio/internal/world"
)

// keyCodes covers every name in input.KeyNames.
var keyCodes = map[string]int32{
	"w":         rl.KeyW,
	"a":         rl.KeyA,
	"s":         rl.KeyS,
	"d":         rl.KeyD,
	"e":         rl.KeyE,
	"q":         rl.KeyQ,
	"f":         rl.KeyF,
	"space":     rl.KeySpace,
	"enter":     rl.KeyEnter,
	"escape":    rl.KeyEscape,
	"backspace": rl.KeyBackspace,
	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
}

// Keyboard samples bound raylib keys into world input.
type Keyboard struct {
	codes map[world.Action][]int32
}

// NewKeyboard resolves the bindings to raylib key codes once.
func NewKeyboard(b *input.Bindings) *Keyboard {
	k := &Keyboard{codes: make(map[world.Action][]int32)}
	for _, a := range world.Actions() {
		for _, name := range b.KeysFor(a) {
			if code, ok := keyCodes[name]; ok {
				k.codes[a] = append(k.codes[a], code)
			}
		}
	}
	return k
}

// Poll sets every action held while any of its keys is down. Call at the top of the frame.
func (k *Keyboard) Poll(in *world.InputState) {
	for _, a := range world.Actions() {
		down := false
		for _, code := range k.codes[a] {
			if rl.IsKeyDown(code) {
				down = true
				break
			}
		}
		in.Set(a, down)
	}
}
