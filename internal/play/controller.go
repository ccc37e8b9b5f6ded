package play

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/appengine-ltd/azure-guardian/internal/ai"
	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/parser"
	"github.com/appengine-ltd/azure-guardian/internal/sfx"
)

const (
	maxMessages = 200
	nudgeTicks  = 15
)

// Answer is the AI side panel: the latest fact or recipe, or the one still
// in flight when Busy.
type Answer struct {
	Topic    ai.Topic
	Name     string
	Text     string
	Busy     bool
	Fallback bool
}

type Options struct {
	Tuning   game.Tuning
	Seed     int64
	AIConfig ai.Config
	APIKey   string
	// Generator builds the text backend for the current AI settings. It
	// defaults to ai.NewGenerator with APIKey.
	Generator func(ai.Config) ai.Generator
	// SaveAI persists AI settings after a toggle. Nil skips saving.
	SaveAI func(ai.Config) error
	Sound  *sfx.Player
	Logger *log.Logger
}

// Controller is the single-player loop shared by the window and terminal
// clients. It owns the session; front ends feed it gestures and typed
// commands and draw from Snapshot.
type Controller struct {
	session *game.Session
	queue   *game.InputQueue
	parser  *parser.Parser

	aiCfg     ai.Config
	generator func(ai.Config) ai.Generator
	saveAI    func(ai.Config) error
	ai        *ai.Service
	aiCh      <-chan ai.Result
	aiCancel  context.CancelFunc
	answer    Answer

	sound  *sfx.Player
	logger *log.Logger

	landed    []string
	messages  []string
	pending   *parser.ClarifyQuestion
	nudge     int
	nudgeLeft int
	quit      bool
	now       func() time.Time
}

func New(opts Options) (*Controller, error) {
	session, err := game.NewSession(opts.Tuning, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Controller{
		session:   session,
		queue:     game.NewInputQueue(64),
		parser:    parser.New(),
		aiCfg:     opts.AIConfig,
		generator: opts.Generator,
		saveAI:    opts.SaveAI,
		sound:     opts.Sound,
		logger:    logger,
		now:       time.Now,
	}
	if c.generator == nil {
		key := opts.APIKey
		c.generator = func(cfg ai.Config) ai.Generator { return ai.NewGenerator(cfg, key) }
	}
	c.aiCfg.ModelID = ai.NormalizeModelID(c.aiCfg.ModelID)
	c.rebuildAI()
	return c, nil
}

func (c *Controller) rebuildAI() {
	c.ai = ai.NewService(c.generator(c.aiCfg), c.logger)
}

// Queue is where front ends push held keys, casts and starts.
func (c *Controller) Queue() *game.InputQueue {
	return c.queue
}

// Tick drains pending input, advances the session one frame and folds the
// resulting events into messages, the landed list and sound cues.
func (c *Controller) Tick(now time.Time) []game.Event {
	in := c.queue.Drain()
	if c.nudgeLeft > 0 {
		if c.nudge < 0 {
			in.Left = true
		} else {
			in.Right = true
		}
		c.nudgeLeft--
	}
	events := c.session.Advance(now, in)
	c.observe(events)
	if c.sound != nil {
		c.sound.Handle(events)
	}
	c.pollAnswer()
	return events
}

func (c *Controller) observe(events []game.Event) {
	for _, ev := range events {
		switch ev.Type {
		case game.EventSessionStarted:
			c.landed = c.landed[:0]
			c.say(fmt.Sprintf("Shift started: %d seconds on the water. Catch sea life, leave the trash.", int(c.session.Tuning().SessionSeconds)))
		case game.EventLanded:
			name := kindName(ev.Kind)
			c.landed = append(c.landed, name)
			if ev.Category == game.CategoryTrash {
				c.say(fmt.Sprintf("Hauled up a %s (%+d).", name, ev.Delta))
			} else {
				c.say(fmt.Sprintf("Landed a %s (%+d). Score %d.", name, ev.Delta, ev.Score))
			}
		case game.EventGameOver:
			if ev.Reason == game.ReasonTrash {
				c.say(fmt.Sprintf("Ocean polluted! The fish are gone. Final score %d.", ev.Score))
			} else {
				c.say(fmt.Sprintf("Time's up! Final score %d.", ev.Score))
			}
		}
	}
}

func (c *Controller) Snapshot() game.Snapshot {
	return c.session.Snapshot()
}

func (c *Controller) State() game.GameState {
	return c.session.State()
}

// CastAt queues a cast toward aim in canvas space.
func (c *Controller) CastAt(aim game.Vec) {
	c.queue.Enqueue(game.Action{Kind: game.ActionCast, Aim: aim})
}

// StartSession queues a start; it only takes effect outside Playing.
func (c *Controller) StartSession() {
	c.queue.Enqueue(game.Action{Kind: game.ActionStart})
}

// defaultAim points straight down from the rod tip to the sea floor.
func (c *Controller) defaultAim() game.Vec {
	t := c.session.Tuning()
	return game.Vec{X: c.session.RodTip().X, Y: t.CanvasHeight - t.FloorMargin}
}

func (c *Controller) Ask(topic ai.Topic, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.LastLanded()
	}
	if name == "" {
		c.say("Land something first, then ask about it.")
		return
	}
	c.cancelAnswer()
	ctx, cancel := context.WithCancel(context.Background())
	c.aiCancel = cancel
	c.aiCh = c.ai.Request(ctx, topic, name)
	c.answer = Answer{Topic: topic, Name: name, Busy: true}
}

func (c *Controller) pollAnswer() {
	if c.aiCh == nil {
		return
	}
	select {
	case res, ok := <-c.aiCh:
		if ok {
			c.answer = Answer{Topic: res.Topic, Name: res.Name, Text: res.Text, Fallback: res.Fallback}
		}
		c.aiCh = nil
		if c.aiCancel != nil {
			c.aiCancel()
			c.aiCancel = nil
		}
	default:
	}
}

func (c *Controller) cancelAnswer() {
	if c.aiCancel != nil {
		c.aiCancel()
		c.aiCancel = nil
	}
	c.aiCh = nil
}

func (c *Controller) Answer() Answer {
	return c.answer
}

// DismissAnswer clears the side panel and abandons any request in flight.
func (c *Controller) DismissAnswer() {
	c.cancelAnswer()
	c.answer = Answer{}
}

func (c *Controller) AIConfig() ai.Config {
	return c.aiCfg
}

func (c *Controller) ToggleAI() {
	c.aiCfg.AIEnabled = !c.aiCfg.AIEnabled
	c.rebuildAI()
	c.persistAI()
	if c.aiCfg.AIEnabled {
		c.say("AI facts and recipes on.")
	} else {
		c.say("AI facts and recipes off.")
	}
}

func (c *Controller) CycleModel() {
	c.aiCfg.ModelID = ai.NextModelID(c.aiCfg.ModelID)
	c.rebuildAI()
	c.persistAI()
	name := c.aiCfg.ModelID
	if m, ok := ai.ModelByID(name); ok {
		name = m.Name
	}
	c.say("AI model: " + name)
}

func (c *Controller) persistAI() {
	if c.saveAI == nil {
		return
	}
	if err := c.saveAI(c.aiCfg); err != nil {
		c.logger.Printf("save ai settings: %v", err)
		c.say("Could not save AI settings: " + err.Error())
	}
}

func (c *Controller) ToggleMute() {
	if c.sound == nil || !c.sound.Enabled() {
		c.say("Audio is unavailable.")
		return
	}
	muted := !c.sound.Muted()
	c.sound.SetMuted(muted)
	if muted {
		c.say("Sound muted.")
	} else {
		c.say("Sound on.")
	}
}

// Landed lists the kind names landed this session, oldest first.
func (c *Controller) Landed() []string {
	return append([]string(nil), c.landed...)
}

func (c *Controller) LastLanded() string {
	if len(c.landed) == 0 {
		return ""
	}
	return c.landed[len(c.landed)-1]
}

func (c *Controller) Messages() []string {
	return append([]string(nil), c.messages...)
}

func (c *Controller) Pending() *parser.ClarifyQuestion {
	return c.pending
}

func (c *Controller) Quit() bool {
	return c.quit
}

func (c *Controller) RequestQuit() {
	c.quit = true
}

func (c *Controller) Close() {
	c.cancelAnswer()
}

func (c *Controller) say(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	formatted := fmt.Sprintf("[%s] %s", c.now().Format("15:04:05"), line)
	c.messages = append(c.messages, formatted)
	if len(c.messages) > maxMessages {
		c.messages = append([]string(nil), c.messages[len(c.messages)-maxMessages:]...)
	}
}

func kindName(id game.KindID) string {
	if kind, ok := game.KindByID(id); ok {
		return kind.Name
	}
	return string(id)
}
