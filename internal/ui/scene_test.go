package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	s, err := game.NewSession(game.DefaultTuning(), 1)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s.Snapshot()
}

func TestRenderSceneANSI(t *testing.T) {
	out := renderSceneANSI(testSnapshot(t), 30, 10)
	if out == "" {
		t.Fatalf("expected render output")
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}
	if !strings.Contains(out, "▀") {
		t.Fatalf("expected half-block glyphs")
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Fatalf("row %d not reset", i)
		}
	}
}

func TestRenderSceneTooSmall(t *testing.T) {
	snap := testSnapshot(t)
	if got := renderSceneANSI(snap, minSceneCols-1, 10); got != "" {
		t.Fatalf("expected empty render for narrow terminal")
	}
	if got := renderSceneANSI(snap, 30, minSceneRows-1); got != "" {
		t.Fatalf("expected empty render for short terminal")
	}
	if got := renderSceneANSI(game.Snapshot{}, 30, 10); got != "" {
		t.Fatalf("expected empty render without a canvas")
	}
}

func TestHalfBlocksPackPixelPairs(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
		img.Set(x, 1, color.NRGBA{B: 255, A: 255})
	}
	cell := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀"
	if got, want := rgbaImageToANSIHalfBlocks(img), cell+cell+"\x1b[0m"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	clear := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if got := rgbaImageToANSIHalfBlocks(clear); got != "  \x1b[0m" {
		t.Fatalf("expected blank cells for transparent pixels, got %q", got)
	}
}

func TestHexRGBA(t *testing.T) {
	if got := hexRGBA(hexCoral); got != (color.NRGBA{R: 0xfb, G: 0x71, B: 0x85, A: 255}) {
		t.Fatalf("unexpected colour %+v", got)
	}
	magenta := color.NRGBA{R: 255, B: 255, A: 255}
	for _, bad := range []string{"", "#fff", "#zzzzzz"} {
		if got := hexRGBA(bad); got != magenta {
			t.Fatalf("hexRGBA(%q)=%+v want magenta", bad, got)
		}
	}
}
