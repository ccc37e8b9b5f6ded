package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Ocean palette for the window client. internal/ui keeps the same hex
// values for lipgloss because the terminal build has no raylib.
const (
	HexDeep      = "#0c1f3a"
	HexSky       = "#7dd3fc"
	HexSea       = "#0369a1"
	HexFoam      = "#e0f2fe"
	HexHull      = "#92400e"
	HexCoral     = "#fb7185"
	HexKelp      = "#34d399"
	HexSand      = "#fcd34d"
	HexInk       = "#e2e8f0"
	HexMuted     = "#94a3b8"
	HexDanger    = "#f87171"
	HexLine      = "#cbd5e1"
	HexPanel     = "#10243f"
	HexPanelEdge = "#1e3a5f"
)

var (
	BG            = Hex(HexDeep)
	Sky           = Hex(HexSky)
	SkyHigh       = rl.NewColor(0x38, 0xbd, 0xf8, 255)
	Water         = Hex(HexSea)
	WaterDeep     = rl.NewColor(0x08, 0x2f, 0x49, 255)
	Foam          = Hex(HexFoam)
	Hull          = Hex(HexHull)
	HullTrim      = rl.NewColor(0xfb, 0xbf, 0x24, 255)
	Line          = Hex(HexLine)
	Panel         = rl.Fade(Hex(HexPanel), 0.92)
	PanelRaised   = Hex(HexPanelEdge)
	Border        = rl.NewColor(0x33, 0x55, 0x7f, 255)
	Divider       = rl.NewColor(0x1f, 0x3b, 0x5c, 255)
	TextPrimary   = Hex(HexInk)
	TextSecondary = rl.NewColor(0xbf, 0xdb, 0xfe, 255)
	TextMuted     = Hex(HexMuted)
	AccentCoral   = Hex(HexCoral)
	AccentKelp    = Hex(HexKelp)
	WarningSand   = Hex(HexSand)
	Danger        = Hex(HexDanger)
	DisabledPanel = rl.NewColor(0x0b, 0x17, 0x29, 255)
	DisabledText  = TextMuted
)

// Hex parses "#rrggbb" (the leading # is optional). Malformed input yields
// opaque magenta so it is obvious on screen.
func Hex(s string) rl.Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return rl.Magenta
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, okHi := hexNibble(s[2*i])
		lo, okLo := hexNibble(s[2*i+1])
		if !okHi || !okLo {
			return rl.Magenta
		}
		v[i] = hi<<4 | lo
	}
	return rl.NewColor(v[0], v[1], v[2], 255)
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
