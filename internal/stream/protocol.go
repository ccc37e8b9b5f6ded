package stream

import (
	"encoding/json"
	"fmt"

	"github.com/appengine-ltd/azure-guardian/internal/game"
)

const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgEvents  = "events"
	MsgInput   = "input"
)

const (
	RolePilot  = "pilot"
	RoleViewer = "viewer"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

type Welcome struct {
	ClientID string `json:"clientId"`
	Role     string `json:"role"`
	TickHz   int    `json:"tickHz"`
}

// InputMsg is the pilot's control state. Left and Right are held keys and
// stay in effect until a later message clears them.
type InputMsg struct {
	Left  bool      `json:"left,omitempty"`
	Right bool      `json:"right,omitempty"`
	Cast  *game.Vec `json:"cast,omitempty"`
	Start bool      `json:"start,omitempty"`
}

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode envelope: empty type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
