package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// verb is one console command and the words that spell it. The first word
// is the canonical name.
type verb struct {
	words   []string
	maxArgs int
	// takesKind marks verbs whose argument names a catalog kind.
	takesKind bool
}

func (v verb) name() string { return v.words[0] }

var vocabulary = []verb{
	{words: []string{"help", "h", "commands"}},
	{words: []string{"start", "play", "restart", "new game", "again"}},
	{words: []string{"cast", "throw", "fling", "drop line"}, maxArgs: 2},
	{words: []string{"left", "port", "west"}},
	{words: []string{"right", "starboard", "east"}},
	{words: []string{"fact", "trivia", "info", "tell me about"}, maxArgs: 1, takesKind: true},
	{words: []string{"recipe", "cook", "dish", "how to cook"}, maxArgs: 1, takesKind: true},
	{words: []string{"haul", "inventory", "inv", "catch", "bucket"}},
	{words: []string{"ai", "toggle ai"}},
	{words: []string{"model", "next model"}},
	{words: []string{"quit", "exit", "q", "bye"}},
}

// closeness rates how well typed text names target, from 0 (no match) to 1
// (exact). Verbs and kind names share it.
func closeness(typed, target string) float64 {
	switch {
	case typed == "" || target == "":
		return 0
	case typed == target:
		return 1
	case len(typed) >= 2 && strings.HasPrefix(target, typed):
		return 0.9
	case len(typed) >= 3 && containsWord(target, typed):
		return 0.88
	case len(typed) < 3:
		return 0
	}
	dist := closestDistance(typed, target)
	if dist > editBudget(len(target)) {
		return 0
	}
	return 0.72 - 0.08*float64(dist)
}

// closestDistance compares typed with the whole target and with each of
// its words, so "boto" still finds "old boot".
func closestDistance(typed, target string) int {
	best := levenshtein.ComputeDistance(typed, target)
	if strings.Contains(typed, " ") {
		return best
	}
	for _, word := range tokenise(target) {
		if len(word) < 3 {
			continue
		}
		if d := levenshtein.ComputeDistance(typed, word); d < best {
			best = d
		}
	}
	return best
}

func editBudget(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

type verbMatch struct {
	verb  verb
	used  int
	score float64
}

// matchVerb scores the leading tokens against every spelling and keeps each
// verb's best. Results are ordered best first.
func matchVerb(tokens []string) []verbMatch {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]verbMatch, 0, len(vocabulary))
	for _, v := range vocabulary {
		var best verbMatch
		for _, word := range v.words {
			used := min(len(tokens), len(tokenise(word)))
			score := closeness(strings.Join(tokens[:used], " "), word)
			if score > best.score || (score == best.score && used > best.used) {
				best = verbMatch{verb: v, used: used, score: score}
			}
		}
		if best.score > 0 {
			out = append(out, best)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		if out[i].used != out[j].used {
			return out[i].used > out[j].used
		}
		return out[i].verb.name() < out[j].verb.name()
	})
	return out
}
