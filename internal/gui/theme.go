package gui

import (
	"fmt"

	uitheme "github.com/appengine-ltd/azure-guardian/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme collects the window palette so screens never pick raw colours.
type Theme struct {
	Background      rl.Color
	Panel           rl.Color
	PanelRaised     rl.Color
	Border          rl.Color
	Divider         rl.Color
	TextPrimary     rl.Color
	TextSecondary   rl.Color
	TextMuted       rl.Color
	Accent          rl.Color
	AccentSecondary rl.Color
	Warning         rl.Color
	Danger          rl.Color
	Shade           rl.Color
}

var AppTheme = Theme{
	Background:      uitheme.BG,
	Panel:           uitheme.Panel,
	PanelRaised:     uitheme.PanelRaised,
	Border:          uitheme.Border,
	Divider:         uitheme.Divider,
	TextPrimary:     uitheme.TextPrimary,
	TextSecondary:   uitheme.TextSecondary,
	TextMuted:       uitheme.TextMuted,
	Accent:          uitheme.AccentCoral,
	AccentSecondary: uitheme.AccentKelp,
	Warning:         uitheme.WarningSand,
	Danger:          uitheme.Danger,
	Shade:           uitheme.DisabledPanel,
}

const (
	spaceXS = float32(8)
	spaceS  = float32(12)
	spaceM  = float32(18)
	spaceL  = float32(24)

	roundness = float32(0.12)
	segments  = int32(8)
)

// panelStyle picks the fill and outline of a rounded box.
type panelStyle int

const (
	panelCard    panelStyle = iota // overlays and answer cards
	panelConsole                   // the command line, outlined in kelp
	panelToast                     // translucent strip behind log lines
)

func drawBox(rect rl.Rectangle, style panelStyle) {
	fill, edge, width := AppTheme.PanelRaised, lerpColor(AppTheme.Border, AppTheme.AccentSecondary, 0.35), float32(1.4)
	switch style {
	case panelConsole:
		edge, width = AppTheme.AccentSecondary, 2
	case panelToast:
		fill, edge, width = rl.Fade(AppTheme.Shade, 0.8), rl.Fade(AppTheme.Border, 0.6), 1
	}
	rl.DrawRectangleRounded(rect, roundness, segments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, roundness, segments, width, edge)
}

// DrawPanel draws a card. A non-empty title gets an underlined header and a
// divider across the top.
func DrawPanel(rect rl.Rectangle, title string) {
	drawBox(rect, panelCard)
	if title == "" {
		return
	}
	x, y := int32(rect.X+spaceM), int32(rect.Y+spaceS)
	drawText(title, x, y, typeScale.Header, AppTheme.TextPrimary)
	underline := max(float32(measureText(title, typeScale.Header))*0.6, 44)
	uy := float32(y+typeScale.Header) + 6
	rl.DrawLineEx(rl.NewVector2(float32(x), uy), rl.NewVector2(float32(x)+underline, uy), 2, AppTheme.Accent)
	dy := uy + 2
	rl.DrawLineEx(rl.NewVector2(rect.X+spaceM, dy), rl.NewVector2(rect.X+rect.Width-spaceM, dy), 1, AppTheme.Divider)
}

// DrawButton draws the overlay's single call to action with its label
// centred.
func DrawButton(rect rl.Rectangle, label string) {
	rl.DrawRectangleRounded(rect, roundness, segments, AppTheme.PanelRaised)
	rl.DrawRectangleRoundedLinesEx(rect, roundness, segments, 2, AppTheme.Accent)
	size := typeScale.Body
	x := int32(rect.X + (rect.Width-float32(measureText(label, size)))/2)
	y := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	drawText(label, x, y, size, AppTheme.TextPrimary)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, typeScale.Small, AppTheme.TextMuted)
}

// DrawStat renders a big number with a small caption above it, right
// aligned when alignRight is set.
func DrawStat(caption string, value int, x, y int32, alignRight bool, clr rl.Color) {
	size := typeScale.Title + 16
	text := fmt.Sprintf("%d", value)
	capW := measureText(caption, typeScale.Small)
	valW := measureText(text, size)
	capX, valX := x, x
	if alignRight {
		capX = x - capW
		valX = x - valW
	}
	pill := rl.NewRectangle(float32(capX)-spaceXS, float32(y)-2, float32(capW)+2*spaceXS, float32(typeScale.Small)+4)
	rl.DrawRectangleRounded(pill, 1, 8, rl.Fade(uitheme.Foam, 0.6))
	drawText(caption, capX, y, typeScale.Small, uitheme.WaterDeep)
	drawText(text, valX, y+typeScale.Small+6, size, clr)
}

// DrawTimerBar shows the remaining share of the session.
func DrawTimerBar(rect rl.Rectangle, remaining, total float64) {
	frac := float32(0)
	if total > 0 {
		frac = float32(max(0, min(1, remaining/total)))
	}
	rl.DrawRectangleRounded(rect, 1, 8, rl.Fade(AppTheme.PanelRaised, 0.85))
	fill := rect
	fill.Width = rect.Width * frac
	if fill.Width > 0 {
		rl.DrawRectangleRounded(fill, 1, 8, timerFillColor(remaining))
	}
}

func timerFillColor(remaining float64) rl.Color {
	switch {
	case remaining <= 10:
		return AppTheme.Danger
	case remaining <= 20:
		return AppTheme.Warning
	default:
		return AppTheme.AccentSecondary
	}
}

// lerpColor blends a towards b by t in [0, 1].
func lerpColor(a, b rl.Color, t float32) rl.Color {
	t = max(0, min(1, t))
	ch := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t) }
	return rl.NewColor(ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), ch(a.A, b.A))
}
