package parser

import (
	"fmt"
	"sort"
	"strings"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Try help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	matches := matchVerb(tokens)
	if len(matches) == 0 || matches[0].score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, start, cast, left, right, fact, recipe, haul, quit.",
		}
		return intent
	}

	best := matches[0]
	if len(matches) > 1 && best.score-matches[1].score < 0.05 && matches[1].score > 0.65 {
		options := make([]Intent, 0, 2)
		for _, m := range matches[:2] {
			name := m.verb.name()
			options = append(options, Intent{Raw: raw, Normalised: name, Kind: commandKind(name), Verb: name, Confidence: m.score})
		}
		intent.Clarify = &ClarifyQuestion{Prompt: "Did you mean:", Options: options}
		return intent
	}

	intent.Verb = best.verb.name()
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(best.score)
	argsTokens := tokens[best.used:]

	if best.verb.takesKind {
		return p.resolveKindArg(ctx, intent, argsTokens)
	}

	intent.Args = argsTokens
	if n := best.verb.maxArgs; len(intent.Args) > n {
		intent.Args = append([]string(nil), intent.Args[:n]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}
	if len(intent.Args) == 0 {
		intent.Args = nil
	}
	if intent.Verb == "cast" && len(intent.Args) > 0 {
		if _, _, ok := ParseAim(intent.Args); !ok {
			intent.Clarify = &ClarifyQuestion{Prompt: "cast takes no arguments or an x y target, e.g. cast 600 500."}
			intent.Confidence = 0.42
		}
	}
	return intent
}

// resolveKindArg fills the single kind argument of fact and recipe. A missing
// argument or a pronoun means the most recently landed kind.
func (p *Parser) resolveKindArg(ctx ParseContext, intent Intent, args []string) Intent {
	filtered := make([]string, 0, len(args))
	for _, token := range args {
		if !isFiller(token) {
			filtered = append(filtered, token)
		}
	}

	if len(filtered) == 0 || (len(filtered) == 1 && isPronoun(filtered[0])) {
		if last := strings.TrimSpace(ctx.LastEntity); last != "" {
			intent.Args = []string{last}
			if len(filtered) == 1 {
				intent.Confidence = clampScore(intent.Confidence - 0.08)
			}
			return intent
		}
		if options := buildKindOptions(ctx, intent.Verb, 5); len(options) > 0 {
			intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("Which catch should I look up for %s?", intent.Verb), Options: options}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs something you have landed.", intent.Verb)}
		intent.Confidence = 0.42
		return intent
	}

	matches, confidence, tie := resolveKind(strings.Join(filtered, " "), ctx)
	if tie && len(matches) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       commandKind(intent.Verb),
				Verb:       intent.Verb,
				Args:       []string{matches[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		intent.Clarify = &ClarifyQuestion{Prompt: "Did you mean:", Options: options}
		intent.Confidence = 0.52
		return intent
	}
	if len(matches) == 1 {
		intent.Args = matches
		intent.Confidence = clampScore((intent.Confidence * 0.75) + (confidence * 0.25))
		return intent
	}

	// Unknown names still go through; the AI can talk about anything.
	intent.Args = []string{strings.Join(filtered, " ")}
	intent.Confidence = clampScore(intent.Confidence - 0.1)
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "fact", "recipe", "haul":
		return Query
	default:
		return Command
	}
}

// resolveKind matches free text against the catalog names, boosting kinds the
// player has actually landed. Results keep the catalog spelling.
func resolveKind(token string, ctx ParseContext) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	display := map[string]string{}
	for _, name := range append(append([]string(nil), ctx.Kinds...), ctx.Landed...) {
		if key := normaliseInput(name); key != "" {
			if _, ok := display[key]; !ok {
				display[key] = name
			}
		}
	}
	landed := make([]string, 0, len(ctx.Landed))
	for _, name := range ctx.Landed {
		landed = append(landed, normaliseInput(name))
	}
	all := make([]string, 0, len(display))
	for key := range display {
		all = append(all, key)
	}
	sort.Strings(all)

	keys, score, tie := bestMatches(n, all, landed)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, display[key])
	}
	return out, score, tie
}

func bestMatches(token string, all []string, boost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	boostSet := make(map[string]bool, len(boost))
	for _, b := range boost {
		boostSet[b] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := closeness(token, cand)
		if score == 0 {
			continue
		}
		if boostSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildKindOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for i := len(ctx.Landed) - 1; i >= 0; i-- {
		name := ctx.Landed[i]
		n := normaliseInput(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{name},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "what did i catch", "what have i caught", "show my catch", "my haul") {
		return makeIntent(Query, "haul", nil, 0.9)
	}
	if containsAnyPhrase(n, "new game", "play again", "lets go", "let s go", "one more") {
		return makeIntent(Command, "start", nil, 0.86)
	}
	if containsAnyPhrase(n, "how do i cook", "how to cook", "can i eat", "is it edible") {
		return makeKindIntent(ctx, makeIntent, "recipe", n)
	}
	if containsAnyPhrase(n, "tell me about", "what is", "what s", "fun fact", "did you know") {
		return makeKindIntent(ctx, makeIntent, "fact", n)
	}
	if containsAnyPhrase(n, "throw the line", "cast the line", "cast line") {
		return makeIntent(Command, "cast", nil, 0.84)
	}
	return nil
}

// makeKindIntent looks for a catalog name anywhere in free text, falling back
// to the last landed kind.
func makeKindIntent(ctx ParseContext, makeIntent func(IntentKind, string, []string, float64) *Intent, verb, n string) *Intent {
	tokens := tokenise(n)
	for size := 2; size >= 1; size-- {
		for i := 0; i+size <= len(tokens); i++ {
			chunk := strings.Join(tokens[i:i+size], " ")
			if isFiller(chunk) || isPronoun(chunk) || len(chunk) < 3 {
				continue
			}
			m, confidence, tie := resolveKind(chunk, ctx)
			if len(m) == 1 && !tie && confidence >= 0.6 {
				return makeIntent(Query, verb, m, confidence*0.9)
			}
		}
	}
	if last := strings.TrimSpace(ctx.LastEntity); last != "" {
		return makeIntent(Query, verb, []string{last}, 0.7)
	}
	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
