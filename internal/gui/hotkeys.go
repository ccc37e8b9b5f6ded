package gui

import (
	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/parser"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// hotkeyVerbs maps single keys to console verbs for the current state.
func hotkeyVerbs(state game.GameState) map[int32]string {
	keys := map[int32]string{
		rl.KeyF: "fact",
		rl.KeyR: "recipe",
		rl.KeyI: "ai",
		rl.KeyN: "model",
		rl.KeyH: "help",
	}
	if state == game.StatePlaying {
		keys[rl.KeySpace] = "cast"
	} else {
		keys[rl.KeySpace] = "start"
		keys[rl.KeyEnter] = "start"
	}
	return keys
}

func hotkeyIntent(verb string) parser.Intent {
	kind := parser.Command
	switch verb {
	case "help":
		kind = parser.Help
	case "fact", "recipe":
		kind = parser.Query
	}
	return parser.Intent{Raw: verb, Normalised: verb, Kind: kind, Verb: verb, Confidence: 1}
}

func HotkeysEnabled(uiState *gameUI) bool {
	if uiState == nil {
		return true
	}
	return !uiState.console.open
}

func ModifiedPressedKey(key int32) bool {
	return (shiftDown() || ctrlDown() || altDown()) && rl.IsKeyPressed(key)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}
