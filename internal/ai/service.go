package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

type Topic string

const (
	TopicFact   Topic = "fact"
	TopicRecipe Topic = "recipe"
)

const (
	FactEmpty    = "This one is a complete mystery!"
	FactFailed   = "The AI is diving right now and can't fetch anything."
	RecipeEmpty  = "Better admired than eaten."
	RecipeFailed = "The AI chef is out to lunch."
)

type Result struct {
	Topic    Topic
	Name     string
	Text     string
	Fallback bool
	Err      error
}

// Service turns a caught kind's display name into flavour text. It never
// fails: every error or empty reply is replaced with a fixed fallback.
type Service struct {
	gen    Generator
	logger *log.Logger
}

func NewService(gen Generator, logger *log.Logger) *Service {
	if gen == nil {
		gen = Offline{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{gen: gen, logger: logger}
}

func (s *Service) FactFor(ctx context.Context, name string) string {
	return s.Ask(ctx, TopicFact, name).Text
}

func (s *Service) RecipeFor(ctx context.Context, name string) string {
	return s.Ask(ctx, TopicRecipe, name).Text
}

// Ask blocks until the generator answers or ctx is done. There is no
// deadline of its own; callers cancel through ctx.
func (s *Service) Ask(ctx context.Context, topic Topic, name string) Result {
	res := Result{Topic: topic, Name: name}
	prompt, err := promptFor(topic, name)
	if err != nil {
		res.Err = err
		res.Text, res.Fallback = failedText(topic), true
		return res
	}

	text, err := s.gen.Generate(ctx, prompt)
	text = strings.TrimSpace(text)
	switch {
	case err != nil:
		if !errors.Is(err, ErrOffline) {
			s.logger.Printf("%s for %q failed: %v", topic, name, err)
		}
		res.Err = err
		res.Text, res.Fallback = failedText(topic), true
	case text == "":
		res.Text, res.Fallback = emptyText(topic), true
	default:
		res.Text = text
	}
	return res
}

// Request runs Ask on its own goroutine. The channel yields exactly one
// Result and is then closed; cancel ctx to abandon the call.
func (s *Service) Request(ctx context.Context, topic Topic, name string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- s.Ask(ctx, topic, name)
	}()
	return ch
}

func promptFor(topic Topic, name string) (string, error) {
	switch topic {
	case TopicFact:
		return fmt.Sprintf("Give me one fun, short and surprising biology fact about %s. "+
			"If %q is trash (like a boot or a can), give a short fact about ocean pollution or recycling instead. "+
			"Keep it within two sentences.", name, name), nil
	case TopicRecipe:
		return fmt.Sprintf("Suggest the name of a tasty dish I could make with %s. "+
			"If it is trash (like a boot, a tire or a can), invent a funny parody recipe name instead "+
			"(for example \"Boiled Old Shoe Sole\"). "+
			"Then give 3 short preparation steps, and make them silly if it is trash.", name), nil
	default:
		return "", fmt.Errorf("unknown topic %q", topic)
	}
}

func emptyText(topic Topic) string {
	if topic == TopicRecipe {
		return RecipeEmpty
	}
	return FactEmpty
}

func failedText(topic Topic) string {
	if topic == TopicRecipe {
		return RecipeFailed
	}
	return FactFailed
}
