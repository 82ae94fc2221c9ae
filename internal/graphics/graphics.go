package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio/internal/config"
	"portfolio/internal/logger"
)

// Run opens the window, calls setup once the GL context exists, then calls frame once
// per frame with the frame time between BeginDrawing and EndDrawing. ESC is a game key,
// so the window closes only through the window button. Run returns when the window is
// closed.
func Run(win config.WindowPrefs, log *logger.Logger, setup func(), frame func(dt float32)) {
	var flags uint32 = rl.FlagWindowResizable | rl.FlagMsaa4xHint
	width, height := win.Width, win.Height
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)
	log.Infof("window open %dx%d fullscreen=%v", rl.GetScreenWidth(), rl.GetScreenHeight(), win.Fullscreen)
	if setup != nil {
		setup()
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			log.Infof("window resized to %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		rl.BeginDrawing()
		frame(rl.GetFrameTime())
		rl.EndDrawing()
	}
	log.Infof("window closed")
}
