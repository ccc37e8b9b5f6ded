//go:build !cgo

package sfx

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
)

func openSpeaker(beep.SampleRate, *beep.Mixer) (sync.Locker, error) {
	return nil, errors.New("built without cgo; no audio device")
}
