package parser

import "testing"

var catalogNames = []string{"Squid", "Octopus", "Crab", "Plastic Bag", "Drink Can", "Straw", "Old Boot", "Old Tire"}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  RECPIE  ", want: "recpie"},
		{in: "tell-me   ABOUT the squid!!", want: "tell me about the squid"},
		{in: "cast 600, 512.5", want: "cast 600 512.5"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasesMapToCanonicalVerbs(t *testing.T) {
	p := New()
	tests := map[string]string{
		"inv":      "haul",
		"play":     "start",
		"new game": "start",
		"port":     "left",
		"exit":     "quit",
		"throw":    "cast",
	}
	for in, want := range tests {
		intent := p.Parse(ParseContext{}, in)
		if intent.Verb != want {
			t.Fatalf("Parse(%q).Verb=%q want=%q", in, intent.Verb, want)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) did not expect clarify: %+v", in, intent.Clarify)
		}
	}
}

func TestTypoVerbAndKindResolve(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Kinds: catalogNames}, "facts sqid")
	if intent.Verb != "fact" {
		t.Fatalf("expected fact verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "Squid" {
		t.Fatalf("expected Squid, got %+v", intent.Args)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestSingleWordFindsMultiWordKind(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Kinds: catalogNames}, "recipe boot")
	if intent.Verb != "recipe" || len(intent.Args) != 1 || intent.Args[0] != "Old Boot" {
		t.Fatalf("expected recipe Old Boot, got %q %+v", intent.Verb, intent.Args)
	}
}

func TestSharedWordAsksToClarify(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{Kinds: catalogNames}, "fact old")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected two clarify options, got %+v", intent.Clarify)
	}
}

func TestLandedKindsWinTies(t *testing.T) {
	p := New()
	ctx := ParseContext{Kinds: catalogNames, Landed: []string{"Old Tire"}}
	intent := p.Parse(ctx, "fact old")
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "Old Tire" {
		t.Fatalf("expected landed Old Tire to win, got %+v", intent.Args)
	}
}

func TestPronounAndBareVerbUseLastEntity(t *testing.T) {
	p := New()
	ctx := ParseContext{Kinds: catalogNames, LastEntity: "Crab"}
	for _, in := range []string{"recipe it", "recipe"} {
		intent := p.Parse(ctx, in)
		if intent.Clarify != nil {
			t.Fatalf("%q: unexpected clarify: %+v", in, intent.Clarify)
		}
		if len(intent.Args) != 1 || intent.Args[0] != "Crab" {
			t.Fatalf("%q: expected Crab, got %+v", in, intent.Args)
		}
	}
}

func TestBareFactWithoutContextOffersHaul(t *testing.T) {
	p := New()
	ctx := ParseContext{Kinds: catalogNames, Landed: []string{"Squid", "Crab", "Squid"}}
	intent := p.Parse(ctx, "fact")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify")
	}
	if len(intent.Clarify.Options) != 2 || intent.Clarify.Options[0].Args[0] != "Squid" {
		t.Fatalf("expected most recent unique catches first, got %+v", intent.Clarify.Options)
	}
}

func TestCastArguments(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "cast 600 500")
	x, y, ok := ParseAim(intent.Args)
	if intent.Verb != "cast" || !ok || x != 600 || y != 500 {
		t.Fatalf("expected cast at 600,500, got %+v", intent)
	}
	if bare := p.Parse(ParseContext{}, "cast"); bare.Clarify != nil || bare.Args != nil {
		t.Fatalf("expected bare cast without args, got %+v", bare)
	}
	if bad := p.Parse(ParseContext{}, "cast far"); bad.Clarify == nil {
		t.Fatalf("expected clarify for non-numeric cast target")
	}
}

func TestFreeTextInference(t *testing.T) {
	p := New()
	ctx := ParseContext{Kinds: catalogNames, LastEntity: "Squid"}
	tests := []struct {
		in   string
		verb string
		arg  string
	}{
		{in: "what did i catch", verb: "haul"},
		{in: "how do i cook an octopus", verb: "recipe", arg: "Octopus"},
		{in: "how do i cook it", verb: "recipe", arg: "Squid"},
		{in: "fun fact about crabs", verb: "fact", arg: "Crab"},
	}
	for _, tc := range tests {
		intent := p.Parse(ctx, tc.in)
		if intent.Verb != tc.verb {
			t.Fatalf("Parse(%q).Verb=%q want=%q", tc.in, intent.Verb, tc.verb)
		}
		if tc.arg != "" && (len(intent.Args) != 1 || intent.Args[0] != tc.arg) {
			t.Fatalf("Parse(%q).Args=%+v want=%q", tc.in, intent.Args, tc.arg)
		}
	}
}

func TestGibberishAsksForHelp(t *testing.T) {
	intent := New().Parse(ParseContext{}, "zzzzqx")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown intent with clarify, got %+v", intent)
	}
}

func TestIntentToCommandString(t *testing.T) {
	got := IntentToCommandString(Intent{Verb: "Recipe", Args: []string{"Old Boot"}})
	if got != "recipe old boot" {
		t.Fatalf("unexpected command string %q", got)
	}
}

func TestClosenessTiers(t *testing.T) {
	tests := []struct {
		typed, target string
		want          float64
	}{
		{typed: "recipe", target: "recipe", want: 1},
		{typed: "rec", target: "recipe", want: 0.9},
		{typed: "boot", target: "old boot", want: 0.88},
		{typed: "recpie", target: "recipe", want: 0.56},
		{typed: "zz", target: "haul", want: 0},
		{typed: "octopus", target: "crab", want: 0},
	}
	for _, tc := range tests {
		if got := closeness(tc.typed, tc.target); got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Fatalf("closeness(%q, %q)=%.2f want=%.2f", tc.typed, tc.target, got, tc.want)
		}
	}
}

func TestMultiWordSpellingConsumesItsTokens(t *testing.T) {
	m := matchVerb(tokenise("tell me about octopus"))
	if len(m) == 0 || m[0].verb.name() != "fact" || m[0].used != 3 {
		t.Fatalf("expected fact consuming three tokens, got %+v", m)
	}
	intent := New().Parse(ParseContext{Kinds: catalogNames}, "tell me about octopus")
	if len(intent.Args) != 1 || intent.Args[0] != "Octopus" {
		t.Fatalf("expected Octopus argument, got %+v", intent.Args)
	}
}

func TestAmbiguousVerbPrefixAsks(t *testing.T) {
	intent := New().Parse(ParseContext{}, "ca")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected cast/haul clarify, got %+v", intent)
	}
	got := map[string]bool{}
	for _, o := range intent.Clarify.Options {
		got[o.Verb] = true
	}
	if !got["cast"] || !got["haul"] {
		t.Fatalf("expected cast and haul options, got %+v", intent.Clarify.Options)
	}
}
