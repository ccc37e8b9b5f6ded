package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	consoleMaxLen  = 120
	consoleHistory = 40
)

type consoleState struct {
	open    bool
	input   string
	history []string
	recall  int
}

func (ui *gameUI) openConsole() {
	ui.console.open = true
	ui.console.input = ""
	ui.console.recall = len(ui.console.history)
	// Swallow the '/' that opened the bar.
	for rl.GetCharPressed() > 0 {
	}
}

func (ui *gameUI) closeConsole() {
	ui.console.open = false
	ui.console.input = ""
}

func (ui *gameUI) updateConsole() {
	captureTextInput(&ui.console.input, consoleMaxLen)
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.closeConsole()
	case rl.IsKeyPressed(rl.KeyEnter):
		ui.submitConsole()
	case rl.IsKeyPressed(rl.KeyUp):
		ui.recallHistory(-1)
	case rl.IsKeyPressed(rl.KeyDown):
		ui.recallHistory(1)
	}
}

// submitConsole runs the typed line. The bar stays open while the
// controller waits for a numbered answer.
func (ui *gameUI) submitConsole() {
	line := strings.TrimSpace(ui.console.input)
	ui.console.input = ""
	if line == "" {
		ui.closeConsole()
		return
	}
	ui.console.history = append(ui.console.history, line)
	if len(ui.console.history) > consoleHistory {
		ui.console.history = append([]string(nil), ui.console.history[len(ui.console.history)-consoleHistory:]...)
	}
	ui.console.recall = len(ui.console.history)
	ui.ctl.Submit(line)
	if ui.ctl.Pending() == nil {
		ui.closeConsole()
	}
}

func (ui *gameUI) recallHistory(step int) {
	n := len(ui.console.history)
	if n == 0 {
		return
	}
	ui.console.recall = clampInt(ui.console.recall+step, 0, n)
	if ui.console.recall == n {
		ui.console.input = ""
		return
	}
	ui.console.input = ui.console.history[ui.console.recall]
}

func (ui *gameUI) drawConsole() {
	if !ui.console.open {
		return
	}
	h := float32(textLineHeight(typeScale.Body)) + 2*spaceS
	rect := rl.NewRectangle(ui.view.X+spaceM, ui.view.Y+ui.view.Height-h-spaceM, ui.view.Width-2*spaceM, h)
	drawBox(rect, panelConsole)
	prompt := "> " + ui.console.input
	if (int(rl.GetTime()*2))%2 == 0 {
		prompt += "_"
	}
	drawText(prompt, int32(rect.X+spaceS), int32(rect.Y+spaceS), typeScale.Body, AppTheme.TextPrimary)
	if q := ui.ctl.Pending(); q != nil {
		DrawHintText("Type an option number, or a new command.", int32(rect.X+spaceS), int32(rect.Y-float32(typeScale.Small)-spaceXS))
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
