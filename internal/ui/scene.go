package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

const (
	minSceneCols = 24
	minSceneRows = 8
)

// renderSceneANSI rasterises the snapshot at one pixel per column and two
// per row, then packs pixel pairs into half-block cells.
func renderSceneANSI(snap game.Snapshot, cols, rows int) string {
	if cols < minSceneCols || rows < minSceneRows || snap.Canvas.X <= 0 || snap.Canvas.Y <= 0 {
		return ""
	}
	return rgbaImageToANSIHalfBlocks(rasterizeScene(snap, cols, rows*2))
}

func rasterizeScene(snap game.Snapshot, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	sx := float64(w) / snap.Canvas.X
	sy := float64(h) / snap.Canvas.Y
	dc.Scale(sx, sy)

	cw, ch := snap.Canvas.X, snap.Canvas.Y
	water := snap.WaterLevel

	sky := gg.NewLinearGradient(0, 0, 0, water)
	sky.AddColorStop(0, hexRGBA("#38bdf8"))
	sky.AddColorStop(1, hexRGBA(hexSky))
	dc.SetFillStyle(sky)
	dc.DrawRectangle(0, 0, cw, water)
	dc.Fill()

	sea := gg.NewLinearGradient(0, water, 0, ch)
	sea.AddColorStop(0, hexRGBA(hexSea))
	sea.AddColorStop(1, hexRGBA("#082f49"))
	dc.SetFillStyle(sea)
	dc.DrawRectangle(0, water, cw, ch-water)
	dc.Fill()

	dc.SetColor(withAlpha(hexRGBA(hexSand), 150))
	dc.DrawRectangle(0, ch-34, cw, 34)
	dc.Fill()

	for _, p := range snap.Particles {
		if p.Alpha <= 0 {
			continue
		}
		dc.SetColor(withAlpha(hexRGBA(hexFoam), uint8(200*clampFloat(p.Alpha, 0, 1))))
		dc.DrawCircle(p.X, p.Y, math.Max(p.Size, 3/sx))
		dc.Fill()
	}

	for _, e := range snap.Entities {
		drawEntity(dc, e.Kind, hexRGBA(e.Color), e.X, e.Y, sizeScale(e.Size), sx)
		if e.Caught {
			dc.SetColor(hexRGBA(hexSand))
			dc.SetLineWidth(1)
			dc.DrawCircle(e.X, e.Y, 30*sizeScale(e.Size))
			dc.Stroke()
		}
	}

	// Line and hook.
	hookX, hookY := snap.Hook.X, snap.Hook.Y
	if snap.Hook.State == game.HookIdle {
		hookX, hookY = snap.RodTip.X, snap.RodTip.Y+40
	}
	dc.SetColor(hexRGBA(hexLine))
	dc.SetLineWidth(1)
	dc.DrawLine(snap.RodTip.X, snap.RodTip.Y, hookX, hookY)
	dc.Stroke()
	dc.DrawCircle(hookX, hookY, 6)
	dc.Fill()

	drawBoat(dc, snap, sx)
	return dc.Image()
}

func drawBoat(dc *gg.Context, snap game.Snapshot, sx float64) {
	x, y := snap.BoatX, snap.BoatY
	half := snap.BoatWidth / 2
	hull := hexRGBA(hexHull)

	dc.SetColor(withAlpha(hull, 220))
	dc.DrawRoundedRectangle(x+40, y-36, half-60, 36, 6)
	dc.Fill()
	for _, item := range snap.Inventory {
		clr := hexRGBA(hexMuted)
		if kind, ok := game.KindByID(item.Kind); ok {
			clr = hexRGBA(kind.Color)
		}
		dc.SetColor(clr)
		dc.DrawCircle(x+item.X, y+25+item.Y, 9)
		dc.Fill()
	}

	dc.SetColor(hull)
	dc.MoveTo(x-half, y)
	dc.LineTo(x-half+40, y+44)
	dc.LineTo(x+half-40, y+44)
	dc.LineTo(x+half, y)
	dc.ClosePath()
	dc.Fill()

	fx, fy := x-50, y-70
	dc.SetColor(hexRGBA(hexCoral))
	dc.DrawRoundedRectangle(fx-14, fy-10, 28, 80, 8)
	dc.Fill()
	dc.SetColor(color.NRGBA{R: 0xfd, G: 0xe6, B: 0x8a, A: 255})
	dc.DrawCircle(fx, fy-24, 16)
	dc.Fill()

	dc.SetColor(hull)
	dc.SetLineWidth(strokeWidth(5, sx))
	dc.DrawLine(fx, fy-20, snap.RodTip.X, snap.RodTip.Y)
	dc.Stroke()
}

// drawEntity works in canvas units; gg strokes in device pixels, so widths
// go through strokeWidth.
func drawEntity(dc *gg.Context, kind game.KindID, clr color.NRGBA, x, y, s, sx float64) {
	dc.SetColor(clr)
	switch kind {
	case "squid":
		dc.DrawEllipse(x, y, 22*s, 9*s)
		dc.Fill()
		dc.SetLineWidth(strokeWidth(3*s, sx))
		for i := -1.0; i <= 1; i++ {
			dc.DrawLine(x-14*s, y+i*5*s, x-30*s, y+i*8*s)
			dc.Stroke()
		}
	case "octopus":
		dc.DrawCircle(x, y-6*s, 17*s)
		dc.Fill()
		dc.SetLineWidth(strokeWidth(4*s, sx))
		for i := -2.0; i <= 2; i++ {
			dc.DrawLine(x+i*7*s, y, x+i*9*s, y+24*s)
			dc.Stroke()
		}
	case "crab":
		dc.DrawEllipse(x, y, 18*s, 11*s)
		dc.Fill()
		dc.DrawCircle(x-22*s, y-12*s, 7*s)
		dc.DrawCircle(x+22*s, y-12*s, 7*s)
		dc.Fill()
	case "bag":
		dc.SetColor(withAlpha(clr, 180))
		dc.DrawRoundedRectangle(x-12*s, y-10*s, 24*s, 26*s, 6*s)
		dc.Fill()
	case "can":
		dc.DrawRectangle(x-7*s, y-12*s, 14*s, 24*s)
		dc.Fill()
	case "straw":
		dc.SetLineWidth(strokeWidth(4*s, sx))
		dc.DrawLine(x-16*s, y+6*s, x+16*s, y-6*s)
		dc.Stroke()
	case "boot":
		dc.DrawRectangle(x-8*s, y-16*s, 12*s, 24*s)
		dc.DrawRoundedRectangle(x-8*s, y+4*s, 24*s, 10*s, 4*s)
		dc.Fill()
	case "tire":
		dc.SetLineWidth(strokeWidth(9*s, sx))
		dc.DrawCircle(x, y, 13.5*s)
		dc.Stroke()
	default:
		dc.DrawCircle(x, y, 12*s)
		dc.Fill()
	}
}

func strokeWidth(w, sx float64) float64 {
	return math.Max(1, w*sx)
}

func sizeScale(s game.SizeClass) float64 {
	switch s {
	case game.SizeLarge:
		return 1.4
	case game.SizeMedium:
		return 1.1
	default:
		return 0.85
	}
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

// hexRGBA parses "#rrggbb"; malformed input comes back magenta.
func hexRGBA(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	if len(s) != 6 {
		return color.NRGBA{R: 255, B: 255, A: 255}
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 255, B: 255, A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func clampFloat(v, minV, maxV float64) float64 {
	return math.Min(maxV, math.Max(minV, v))
}
