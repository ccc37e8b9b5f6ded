package gui

import (
	"math"

	"github.com/appengine-ltd/azure-guardian/internal/game"
	uitheme "github.com/appengine-ltd/azure-guardian/internal/ui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// coralXs are fixed so the seabed does not shimmer between frames.
var coralXs = []float32{90, 260, 430, 700, 880, 1080}

func (ui *gameUI) drawScene() {
	snap := ui.snap
	if ui.view.Width <= 0 || snap.Canvas.X <= 0 {
		return
	}
	cam := rl.Camera2D{
		Offset: rl.Vector2{X: ui.view.X, Y: ui.view.Y},
		Zoom:   ui.view.Width / float32(snap.Canvas.X),
	}
	rl.BeginScissorMode(int32(ui.view.X), int32(ui.view.Y), int32(ui.view.Width), int32(ui.view.Height))
	rl.BeginMode2D(cam)

	drawSea(snap, float32(rl.GetTime()))
	for _, p := range snap.Particles {
		drawBubble(p)
	}
	for _, e := range snap.Entities {
		drawEntity(e)
	}
	drawLine(snap)
	drawBoat(snap)

	rl.EndMode2D()
	rl.EndScissorMode()
}

func drawSea(snap game.Snapshot, t float32) {
	w := int32(snap.Canvas.X)
	h := int32(snap.Canvas.Y)
	water := int32(snap.WaterLevel)

	rl.DrawRectangleGradientV(0, 0, w, water, uitheme.SkyHigh, uitheme.Sky)
	rl.DrawCircle(w-140, 90, 46, rl.Fade(uitheme.WarningSand, 0.9))
	rl.DrawRectangleGradientV(0, water, w, h-water, uitheme.Water, uitheme.WaterDeep)

	// Surface swell.
	prev := rl.Vector2{X: 0, Y: float32(water)}
	for x := float32(0); x <= float32(w); x += 24 {
		y := float32(water) + float32(math.Sin(float64(x/60+t*1.6)))*4
		cur := rl.Vector2{X: x, Y: y}
		if x > 0 {
			rl.DrawLineEx(prev, cur, 3, rl.Fade(uitheme.Foam, 0.8))
		}
		prev = cur
	}

	sand := float32(h) - 34
	rl.DrawRectangleRec(rl.NewRectangle(0, sand, float32(w), 34), rl.Fade(uitheme.WarningSand, 0.55))
	for i, x := range coralXs {
		drawCoral(x, sand, float32(40+(i%3)*18), i%2 == 0)
	}
}

func drawCoral(x, base, height float32, pink bool) {
	clr := uitheme.AccentCoral
	if !pink {
		clr = uitheme.AccentKelp
	}
	trunk := rl.Vector2{X: x, Y: base - height}
	rl.DrawLineEx(rl.Vector2{X: x, Y: base}, trunk, 6, clr)
	rl.DrawLineEx(rl.Vector2{X: x, Y: base - height*0.45}, rl.Vector2{X: x - height*0.35, Y: base - height*0.8}, 5, clr)
	rl.DrawLineEx(rl.Vector2{X: x, Y: base - height*0.6}, rl.Vector2{X: x + height*0.3, Y: base - height*0.95}, 5, clr)
	rl.DrawCircleV(trunk, 4, clr)
}

func drawBubble(p game.ParticleView) {
	if p.Alpha <= 0 {
		return
	}
	pos := rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
	rl.DrawCircleV(pos, float32(p.Size), rl.Fade(uitheme.Foam, float32(p.Alpha)*0.35))
	rl.DrawCircleLinesV(pos, float32(p.Size), rl.Fade(uitheme.Foam, float32(p.Alpha)))
}

func sizeScale(s game.SizeClass) float32 {
	switch s {
	case game.SizeLarge:
		return 1.4
	case game.SizeMedium:
		return 1.1
	default:
		return 0.85
	}
}

func drawEntity(e game.EntityView) {
	pos := rl.Vector2{X: float32(e.X), Y: float32(e.Y)}
	scale := sizeScale(e.Size)
	if e.Caught {
		rl.DrawCircleLinesV(pos, 30*scale, rl.Fade(uitheme.WarningSand, 0.9))
	}
	drawKind(e.Kind, uitheme.Hex(e.Color), pos, scale, 0, float32(e.Direction))
}

// drawKind draws a kind as simple shapes centred on pos. dir is +1 when
// facing right.
func drawKind(kind game.KindID, clr rl.Color, pos rl.Vector2, s, rotation, dir float32) {
	if dir == 0 {
		dir = 1
	}
	switch kind {
	case "squid":
		body := rl.NewRectangle(pos.X, pos.Y, 40*s, 16*s)
		rl.DrawRectanglePro(body, rl.Vector2{X: 14 * s, Y: 8 * s}, rotation, clr)
		top := rl.Vector2{X: pos.X + 26*s*dir, Y: pos.Y - 12*s}
		bottom := rl.Vector2{X: pos.X + 26*s*dir, Y: pos.Y + 12*s}
		if dir < 0 {
			top, bottom = bottom, top
		}
		// raylib culls clockwise triangles.
		rl.DrawTriangle(top, bottom, rl.Vector2{X: pos.X + 36*s*dir, Y: pos.Y}, clr)
		for i := -1; i <= 1; i++ {
			from := rl.Vector2{X: pos.X - 14*s*dir, Y: pos.Y + float32(i)*5*s}
			to := rl.Vector2{X: pos.X - 30*s*dir, Y: pos.Y + float32(i)*8*s}
			rl.DrawLineEx(from, to, 2.5*s, clr)
		}
		drawEye(rl.Vector2{X: pos.X + 14*s*dir, Y: pos.Y - 3*s}, s)
	case "octopus":
		for i := 0; i < 5; i++ {
			x := pos.X + float32(i-2)*7*s
			rl.DrawLineEx(rl.Vector2{X: x, Y: pos.Y}, rl.Vector2{X: x + float32(i%2*2-1)*5*s, Y: pos.Y + 24*s}, 4*s, clr)
		}
		rl.DrawCircleV(rl.Vector2{X: pos.X, Y: pos.Y - 6*s}, 17*s, clr)
		drawEye(rl.Vector2{X: pos.X - 6*s, Y: pos.Y - 8*s}, s)
		drawEye(rl.Vector2{X: pos.X + 6*s, Y: pos.Y - 8*s}, s)
	case "crab":
		for i := -1; i <= 1; i += 2 {
			side := float32(i)
			rl.DrawLineEx(rl.Vector2{X: pos.X + side*12*s, Y: pos.Y}, rl.Vector2{X: pos.X + side*24*s, Y: pos.Y + 10*s}, 3*s, clr)
			rl.DrawCircleV(rl.Vector2{X: pos.X + side*22*s, Y: pos.Y - 12*s}, 7*s, clr)
		}
		rl.DrawEllipse(int32(pos.X), int32(pos.Y), 18*s, 11*s, clr)
		drawEye(rl.Vector2{X: pos.X - 5*s, Y: pos.Y - 8*s}, s)
		drawEye(rl.Vector2{X: pos.X + 5*s, Y: pos.Y - 8*s}, s)
	case "bag":
		rect := rl.NewRectangle(pos.X-12*s, pos.Y-10*s, 24*s, 26*s)
		rl.DrawRectangleRounded(rect, 0.3, 6, rl.Fade(clr, 0.7))
		rl.DrawRing(rl.Vector2{X: pos.X, Y: pos.Y - 10*s}, 5*s, 7*s, 180, 360, 12, rl.Fade(clr, 0.9))
	case "can":
		rect := rl.NewRectangle(pos.X, pos.Y, 14*s, 24*s)
		rl.DrawRectanglePro(rect, rl.Vector2{X: 7 * s, Y: 12 * s}, rotation, clr)
		band := rl.NewRectangle(pos.X, pos.Y, 14*s, 4*s)
		rl.DrawRectanglePro(band, rl.Vector2{X: 7 * s, Y: 12 * s}, rotation, uitheme.Line)
	case "straw":
		rect := rl.NewRectangle(pos.X, pos.Y, 34*s, 4*s)
		rl.DrawRectanglePro(rect, rl.Vector2{X: 17 * s, Y: 2 * s}, rotation-20, clr)
	case "boot":
		rl.DrawRectangleRec(rl.NewRectangle(pos.X-8*s, pos.Y-16*s, 12*s, 24*s), clr)
		rl.DrawRectangleRounded(rl.NewRectangle(pos.X-8*s, pos.Y+4*s, 24*s, 10*s), 0.5, 6, clr)
	case "tire":
		rl.DrawRing(pos, 9*s, 18*s, 0, 360, 28, clr)
		rl.DrawCircleLinesV(pos, 14*s, rl.Fade(uitheme.TextMuted, 0.6))
	default:
		rl.DrawCircleV(pos, 12*s, clr)
	}
}

func drawEye(pos rl.Vector2, s float32) {
	rl.DrawCircleV(pos, 3*s, rl.White)
	rl.DrawCircleV(pos, 1.5*s, rl.Black)
}

func drawLine(snap game.Snapshot) {
	tip := rl.Vector2{X: float32(snap.RodTip.X), Y: float32(snap.RodTip.Y)}
	hook := rl.Vector2{X: float32(snap.Hook.X), Y: float32(snap.Hook.Y)}
	if snap.Hook.State == game.HookIdle {
		hook = rl.Vector2{X: tip.X, Y: tip.Y + 40}
	}
	rl.DrawLineEx(tip, hook, 1.5, rl.Fade(uitheme.Line, 0.9))
	rl.DrawRing(rl.Vector2{X: hook.X - 4, Y: hook.Y}, 3, 5, 0, 200, 10, uitheme.Line)
}

func drawBoat(snap game.Snapshot) {
	x := float32(snap.BoatX)
	y := float32(snap.BoatY)
	half := float32(snap.BoatWidth) / 2

	// Storage box and pile sit behind the hull rim.
	box := rl.NewRectangle(x+40, y-36, half-60, 36)
	rl.DrawRectangleRounded(box, 0.2, 6, rl.Fade(uitheme.Hull, 0.85))
	for _, item := range snap.Inventory {
		drawPileItem(item, x, y+25)
	}

	hull := []rl.Vector2{
		{X: x - half, Y: y},
		{X: x - half + 40, Y: y + 44},
		{X: x + half - 40, Y: y + 44},
		{X: x + half, Y: y},
	}
	rl.DrawTriangle(hull[0], hull[1], hull[3], uitheme.Hull)
	rl.DrawTriangle(hull[1], hull[2], hull[3], uitheme.Hull)
	rl.DrawLineEx(hull[0], hull[3], 6, uitheme.HullTrim)

	// Fisherman and rod.
	fx := x - 50
	fy := y - 70
	rl.DrawRectangleRounded(rl.NewRectangle(fx-14, fy-10, 28, 80), 0.4, 6, uitheme.AccentCoral)
	rl.DrawCircleV(rl.Vector2{X: fx, Y: fy - 24}, 16, rl.NewColor(0xfd, 0xe6, 0x8a, 255))
	rl.DrawRectangleRec(rl.NewRectangle(fx-20, fy-44, 40, 8), uitheme.WarningSand)

	angle := -math.Pi/2.5 + (0.2+math.Pi/2.5)*snap.CastAnim
	hand := rl.Vector2{
		X: fx + float32(math.Cos(angle)*30),
		Y: fy - 30 + float32(math.Sin(angle)*30),
	}
	rl.DrawLineEx(rl.Vector2{X: fx, Y: fy - 4}, hand, 6, uitheme.AccentCoral)
	rl.DrawLineEx(hand, rl.Vector2{X: float32(snap.RodTip.X), Y: float32(snap.RodTip.Y)}, 4, uitheme.Hull)
}

func drawPileItem(item game.InventoryItem, boatX, waterY float32) {
	clr := uitheme.TextMuted
	if kind, ok := game.KindByID(item.Kind); ok {
		clr = uitheme.Hex(kind.Color)
	}
	pos := rl.Vector2{X: boatX + float32(item.X), Y: waterY + float32(item.Y)}
	drawKind(item.Kind, clr, pos, 0.55, float32(item.Rotation*180/math.Pi), 1)
}
