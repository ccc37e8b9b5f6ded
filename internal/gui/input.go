package gui

import (
	"github.com/appengine-ltd/azure-guardian/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// fitViewport letterboxes the canvas into the window, keeping its aspect.
func fitViewport(winW, winH float32, canvas game.Vec) rl.Rectangle {
	if winW <= 0 || winH <= 0 || canvas.X <= 0 || canvas.Y <= 0 {
		return rl.Rectangle{}
	}
	scale := min(winW/float32(canvas.X), winH/float32(canvas.Y))
	w := float32(canvas.X) * scale
	h := float32(canvas.Y) * scale
	return rl.NewRectangle((winW-w)/2, (winH-h)/2, w, h)
}

// screenToCanvas maps a window point into canvas space. A zero-size
// viewport or a point outside it is no input.
func screenToCanvas(p rl.Vector2, view rl.Rectangle, canvas game.Vec) (game.Vec, bool) {
	if view.Width <= 0 || view.Height <= 0 {
		return game.Vec{}, false
	}
	if p.X < view.X || p.Y < view.Y || p.X > view.X+view.Width || p.Y > view.Y+view.Height {
		return game.Vec{}, false
	}
	return game.Vec{
		X: float64((p.X - view.X) / view.Width * float32(canvas.X)),
		Y: float64((p.Y - view.Y) / view.Height * float32(canvas.Y)),
	}, true
}

func (ui *gameUI) captureInput() {
	if !HotkeysEnabled(ui) {
		ui.setHeld(false, false)
		ui.updateConsole()
		return
	}
	if !rl.IsWindowFocused() {
		ui.setHeld(false, false)
		return
	}

	ui.setHeld(
		rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
	)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if aim, ok := screenToCanvas(rl.GetMousePosition(), ui.view, ui.snap.Canvas); ok {
			ui.click(aim)
		}
	}

	if rl.IsKeyPressed(rl.KeySlash) {
		ui.openConsole()
		return
	}
	if ModifiedPressedKey(rl.KeyQ) {
		ui.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.ctl.DismissAnswer()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		ui.showLog = !ui.showLog
	}
	if rl.IsKeyPressed(rl.KeyM) {
		ui.ctl.ToggleMute()
	}
	for key, verb := range hotkeyVerbs(ui.snap.State) {
		if rl.IsKeyPressed(key) {
			ui.intents.EnqueueIntent(hotkeyIntent(verb))
		}
	}
}

// click casts while playing and starts a shift from the menu or game over
// screens.
func (ui *gameUI) click(aim game.Vec) {
	if ui.snap.State != game.StatePlaying {
		ui.ctl.StartSession()
		return
	}
	ui.ctl.CastAt(aim)
}

// setHeld forwards boat key transitions only, so the queue sees one press
// and one release per hold.
func (ui *gameUI) setHeld(left, right bool) {
	q := ui.ctl.Queue()
	if left != ui.heldLeft {
		q.Enqueue(game.Action{Kind: game.ActionLeft, Down: left})
		ui.heldLeft = left
	}
	if right != ui.heldRight {
		q.Enqueue(game.Action{Kind: game.ActionRight, Down: right})
		ui.heldRight = right
	}
}
