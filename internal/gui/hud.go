package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/azure-guardian/internal/ai"
	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/play"
	uitheme "github.com/appengine-ltd/azure-guardian/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const visibleMessages = 5

func (ui *gameUI) drawHUD() {
	if ui.snap.State != game.StatePlaying {
		return
	}
	left := int32(ui.view.X + spaceL)
	right := int32(ui.view.X + ui.view.Width - spaceL)
	top := int32(ui.view.Y + spaceL)

	DrawStat("SCORE", ui.snap.Score, left, top, false, uitheme.WaterDeep)
	DrawStat("TIME", ui.snap.TimeLeft, right, top, true, timerTextColor(ui.snap.TimeLeft))

	bar := rl.NewRectangle(ui.view.X+ui.view.Width/2-160, ui.view.Y+spaceL, 320, 10)
	DrawTimerBar(bar, ui.snap.Remaining, ui.cfg.Play.Tuning.SessionSeconds)
	DrawHintText(ui.statusLine(), int32(bar.X), int32(bar.Y+bar.Height+spaceXS))
}

func timerTextColor(secs int) rl.Color {
	if secs <= 10 {
		return AppTheme.Danger
	}
	return uitheme.WaterDeep
}

func (ui *gameUI) statusLine() string {
	cfg := ui.ctl.AIConfig()
	parts := []string{"AI off"}
	if cfg.AIEnabled {
		name := cfg.ModelID
		if m, ok := ai.ModelByID(name); ok {
			name = m.Name
		}
		parts[0] = "AI: " + name
	}
	if n := len(ui.ctl.Landed()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d landed", n))
	}
	return strings.Join(parts, "  ·  ")
}

func (ui *gameUI) drawAnswer() {
	a := ui.ctl.Answer()
	if a.Name == "" {
		return
	}
	w := min(float32(420), ui.view.Width*0.4)
	rect := rl.NewRectangle(ui.view.X+ui.view.Width-w-spaceL, ui.view.Y+140, w, 280)
	DrawPanel(rect, answerTitle(a))

	body := rl.NewRectangle(rect.X+spaceM, rect.Y+float32(typeScale.Header)+spaceL+spaceS, rect.Width-2*spaceM, 0)
	text := a.Text
	clr := AppTheme.TextPrimary
	if a.Busy {
		text = "Asking the sea..."
		clr = AppTheme.TextMuted
	} else if a.Fallback {
		clr = AppTheme.Warning
	}
	lines := wrapText(text, typeScale.Body, int32(body.Width), measureText)
	lh := textLineHeight(typeScale.Body)
	maxLines := int((rect.Y + rect.Height - spaceL - body.Y) / float32(lh))
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		drawText(line, int32(body.X), int32(body.Y)+int32(i)*lh, typeScale.Body, clr)
	}
	DrawHintText("Esc to close", int32(rect.X+spaceM), int32(rect.Y+rect.Height-spaceS-float32(typeScale.Small)))
}

func answerTitle(a play.Answer) string {
	if a.Topic == ai.TopicRecipe {
		return "Recipe: " + a.Name
	}
	return "Fact: " + a.Name
}

func (ui *gameUI) drawMessages() {
	if !ui.showLog {
		return
	}
	msgs := ui.ctl.Messages()
	if len(msgs) > visibleMessages {
		msgs = msgs[len(msgs)-visibleMessages:]
	}
	if len(msgs) == 0 {
		return
	}
	lh := textLineHeight(typeScale.Small)
	h := float32(lh*int32(len(msgs))) + 2*spaceS
	y := ui.view.Y + ui.view.Height - h - spaceM
	if ui.console.open {
		y -= float32(textLineHeight(typeScale.Body)) + 2*spaceS + spaceL
	}
	rect := rl.NewRectangle(ui.view.X+spaceM, y, min(float32(640), ui.view.Width-2*spaceM), h)
	drawBox(rect, panelToast)
	for i, m := range msgs {
		drawText(m, int32(rect.X+spaceS), int32(rect.Y+spaceS)+int32(i)*lh, typeScale.Small, AppTheme.TextSecondary)
	}
}
