package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
	block   bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func TestServiceFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		gen   *fakeGenerator
		topic Topic
		want  string
		fb    bool
	}{
		{name: "fact text", gen: &fakeGenerator{text: "  Squid have three hearts. "}, topic: TopicFact, want: "Squid have three hearts."},
		{name: "fact empty", gen: &fakeGenerator{text: "   "}, topic: TopicFact, want: FactEmpty, fb: true},
		{name: "fact error", gen: &fakeGenerator{err: errors.New("boom")}, topic: TopicFact, want: FactFailed, fb: true},
		{name: "recipe text", gen: &fakeGenerator{text: "Grilled squid"}, topic: TopicRecipe, want: "Grilled squid"},
		{name: "recipe empty", gen: &fakeGenerator{}, topic: TopicRecipe, want: RecipeEmpty, fb: true},
		{name: "recipe error", gen: &fakeGenerator{err: errors.New("boom")}, topic: TopicRecipe, want: RecipeFailed, fb: true},
	}
	for _, tc := range tests {
		svc := NewService(tc.gen, nil)
		res := svc.Ask(context.Background(), tc.topic, "Squid")
		if res.Text != tc.want || res.Fallback != tc.fb {
			t.Fatalf("%s: got %q fallback=%v want %q fallback=%v", tc.name, res.Text, res.Fallback, tc.want, tc.fb)
		}
	}
}

func TestFactAndRecipeUseTheName(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := NewService(gen, nil)
	if got := svc.FactFor(context.Background(), "Old Boot"); got != "ok" {
		t.Fatalf("unexpected fact %q", got)
	}
	if got := svc.RecipeFor(context.Background(), "Old Boot"); got != "ok" {
		t.Fatalf("unexpected recipe %q", got)
	}
	if len(gen.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(gen.prompts))
	}
	for _, p := range gen.prompts {
		if !strings.Contains(p, "Old Boot") {
			t.Fatalf("prompt does not mention the name: %q", p)
		}
	}
}

func TestUnknownTopicFallsBack(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	res := NewService(gen, nil).Ask(context.Background(), Topic("poem"), "Squid")
	if res.Err == nil || !res.Fallback {
		t.Fatalf("expected error fallback, got %+v", res)
	}
	if len(gen.prompts) != 0 {
		t.Fatalf("generator should not be called for an unknown topic")
	}
}

func TestRequestHonoursCancellation(t *testing.T) {
	svc := NewService(&fakeGenerator{block: true}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	ch := svc.Request(ctx, TopicFact, "Crab")
	cancel()

	select {
	case res := <-ch:
		if !errors.Is(res.Err, context.Canceled) || res.Text != FactFailed {
			t.Fatalf("expected cancelled fallback, got %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("request did not finish after cancel")
	}
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after the single result")
	}
}

func TestOfflineServiceAlwaysFallsBack(t *testing.T) {
	svc := NewService(NewGenerator(Config{AIEnabled: true}, ""), nil)
	if got := svc.RecipeFor(context.Background(), "Tire"); got != RecipeFailed {
		t.Fatalf("expected offline recipe fallback, got %q", got)
	}
	if _, ok := NewGenerator(Config{AIEnabled: false}, "key").(Offline); !ok {
		t.Fatalf("expected disabled AI to use the offline generator")
	}
	if _, ok := NewGenerator(Config{AIEnabled: true}, "key").(*GeminiClient); !ok {
		t.Fatalf("expected a Gemini client when a key is present")
	}
}

type deadlineGenerator struct {
	hasDeadline bool
}

func (g *deadlineGenerator) Generate(ctx context.Context, _ string) (string, error) {
	_, g.hasDeadline = ctx.Deadline()
	return "Squid have three hearts.", nil
}

func TestServiceAddsNoDeadline(t *testing.T) {
	gen := &deadlineGenerator{}
	if got := NewService(gen, nil).FactFor(context.Background(), "Squid"); got != "Squid have three hearts." {
		t.Fatalf("unexpected fact %q", got)
	}
	if gen.hasDeadline {
		t.Fatalf("generator context should carry only the caller's deadline")
	}
}
