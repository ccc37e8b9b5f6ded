//go:build cgo

package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var speakerOnce struct {
	sync.Once
	err error
}

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// openSpeaker starts the shared device once; later players reuse it.
func openSpeaker(rate beep.SampleRate, mixer *beep.Mixer) (sync.Locker, error) {
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(rate, rate.N(100*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return nil, speakerOnce.err
	}
	speaker.Play(mixer)
	return speakerLock{}, nil
}
