package gui

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/play"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Play      play.Options
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type gameUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	ctl     *play.Controller
	intents *intentQueue
	snap    game.Snapshot
	view    rl.Rectangle

	console   consoleState
	showLog   bool
	heldLeft  bool
	heldRight bool
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	defer ui.ctl.Close()
	return ui.Run()
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	ctl, err := play.New(cfg.Play)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	ui := &gameUI{
		cfg:     cfg,
		width:   1280,
		height:  900,
		ctl:     ctl,
		intents: newIntentQueue(32),
		showLog: true,
	}
	ui.snap = ctl.Snapshot()
	ui.view = fitViewport(float32(ui.width), float32(ui.height), ui.snap.Canvas)
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "Azure Guardian")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())
		ui.view = fitViewport(float32(ui.width), float32(ui.height), ui.snap.Canvas)

		ui.update(time.Now())

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update(now time.Time) {
	ui.captureInput()
	ui.intents.drain(ui.ctl.Execute)
	ui.ctl.Tick(now)
	ui.snap = ui.ctl.Snapshot()
	if ui.ctl.Quit() {
		ui.quit = true
	}
}

func (ui *gameUI) draw() {
	ui.drawScene()
	ui.drawHUD()
	switch ui.snap.State {
	case game.StateMenu:
		ui.drawMenu()
	case game.StateGameOver:
		ui.drawGameOver()
	}
	ui.drawAnswer()
	ui.drawMessages()
	ui.drawConsole()
}

func (ui *gameUI) drawMenu() {
	ui.dimCanvas(0.6)
	card := centeredRect(ui.view, 620, 360)
	DrawPanel(card, "")
	drawTextCentered("Azure Guardian", card, 28, typeScale.Title, AppTheme.AccentSecondary)

	secs := int(ui.cfg.Play.Tuning.SessionSeconds)
	cols := []struct {
		label string
		color rl.Color
	}{
		{fmt.Sprintf("%d seconds", secs), AppTheme.TextSecondary},
		{"Catch sea life", AppTheme.Warning},
		{"No trash!", AppTheme.Danger},
	}
	colW := (card.Width - 2*spaceL) / float32(len(cols))
	for i, c := range cols {
		cell := rl.NewRectangle(card.X+spaceL+float32(i)*colW, card.Y+110, colW, 40)
		drawTextCentered(c.label, cell, 0, typeScale.Header, c.color)
	}

	button := rl.NewRectangle(card.X+spaceL, card.Y+190, card.Width-2*spaceL, 64)
	DrawButton(button, "Start shift (Enter)")
	DrawHintText("Move: Left/Right or A/D   Cast: click or Space   Commands: /", int32(card.X+spaceL), int32(card.Y+card.Height-spaceL-float32(typeScale.Small)))
}

func (ui *gameUI) drawGameOver() {
	trash := ui.snap.Reason == game.ReasonTrash
	if trash {
		ui.dimCanvas(0.88)
	} else {
		ui.dimCanvas(0.6)
	}
	card := centeredRect(ui.view, 620, 320)
	DrawPanel(card, "")

	title, sub, accent := "Time's up!", "Final haul", AppTheme.Warning
	if trash {
		title, sub, accent = "Ocean polluted!", "You hauled up trash and the fish are gone.", AppTheme.Danger
	}
	drawTextCentered(title, card, 28, typeScale.Title, accent)
	drawTextCentered(sub, card, 92, typeScale.Body, AppTheme.TextSecondary)
	drawTextCentered(fmt.Sprintf("%d", ui.snap.Score), card, 130, typeScale.Title+20, AppTheme.TextPrimary)
	button := rl.NewRectangle(card.X+spaceL, card.Y+card.Height-spaceL-56, card.Width-2*spaceL, 56)
	DrawButton(button, "Play again (Enter)")
}

func (ui *gameUI) dimCanvas(alpha float32) {
	rl.DrawRectangleRec(ui.view, rl.Fade(rl.Black, alpha))
}

func centeredRect(outer rl.Rectangle, w, h float32) rl.Rectangle {
	if w > outer.Width {
		w = outer.Width
	}
	if h > outer.Height {
		h = outer.Height
	}
	return rl.NewRectangle(outer.X+(outer.Width-w)/2, outer.Y+(outer.Height-h)/2, w, h)
}
