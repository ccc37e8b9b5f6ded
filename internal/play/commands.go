package play

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/azure-guardian/internal/ai"
	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/parser"
)

const helpText = "Commands: start, cast [x y], left, right, fact [kind], recipe [kind], haul, ai, model, quit."

// Submit parses one typed line and runs it. A bare number answers the last
// clarify question.
func (c *Controller) Submit(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if q := c.pending; q != nil {
		c.pending = nil
		if idx, err := strconv.Atoi(raw); err == nil {
			if idx < 1 || idx > len(q.Options) {
				c.say("No such option.")
				return
			}
			c.Execute(q.Options[idx-1])
			return
		}
	}
	c.Execute(c.parser.Parse(c.parseContext(), raw))
}

func (c *Controller) parseContext() parser.ParseContext {
	kinds := game.Catalog()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.Name)
	}
	return parser.ParseContext{
		Kinds:      names,
		Landed:     c.Landed(),
		LastEntity: c.LastLanded(),
	}
}

func (c *Controller) Execute(intent parser.Intent) {
	if q := intent.Clarify; q != nil {
		c.say(q.Prompt)
		if len(q.Options) > 0 {
			c.pending = q
			for i, opt := range q.Options {
				c.say(fmt.Sprintf("  %d) %s", i+1, parser.IntentToCommandString(opt)))
			}
		}
		return
	}

	switch intent.Verb {
	case "help":
		c.say(helpText)
	case "start":
		if c.State() == game.StatePlaying {
			c.say("A shift is already running.")
			return
		}
		c.StartSession()
	case "cast":
		if !c.canSteer() {
			return
		}
		aim := c.defaultAim()
		if x, y, ok := parser.ParseAim(intent.Args); ok {
			aim = game.Vec{X: x, Y: y}
		}
		c.CastAt(aim)
	case "left", "right":
		if !c.canSteer() {
			return
		}
		c.nudge = 1
		if intent.Verb == "left" {
			c.nudge = -1
		}
		c.nudgeLeft = nudgeTicks
	case "fact":
		c.Ask(ai.TopicFact, firstArg(intent.Args))
	case "recipe":
		c.Ask(ai.TopicRecipe, firstArg(intent.Args))
	case "haul":
		c.say(c.HaulSummary())
	case "ai":
		c.ToggleAI()
	case "model":
		c.CycleModel()
	case "quit":
		c.quit = true
	default:
		c.say("Unknown command. " + helpText)
	}
}

func (c *Controller) canSteer() bool {
	if c.State() != game.StatePlaying {
		c.say("No shift running. Type start.")
		return false
	}
	return true
}

// HaulSummary counts this session's landed kinds in the order first landed.
func (c *Controller) HaulSummary() string {
	if len(c.landed) == 0 {
		return "Nothing landed yet."
	}
	counts := map[string]int{}
	order := make([]string, 0, len(c.landed))
	for _, name := range c.landed {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%d× %s", counts[name], name))
	}
	return "Haul: " + strings.Join(parts, ", ")
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
