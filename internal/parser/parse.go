package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// Parse maps raw player input to an intent: an option choice, a meta
// command, or a clarification request when neither fits.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Pick an option number or type a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)

	if choice := parseChoiceTokens(tokens); choice > 0 {
		if choice > len(ctx.Options) {
			intent.Clarify = &ClarifyQuestion{
				Prompt: fmt.Sprintf("There are only %d options. Pick 1-%d.", len(ctx.Options), len(ctx.Options)),
			}
			return intent
		}
		intent.Kind = Choice
		intent.Choice = choice
		intent.Confidence = 1.0
		return intent
	}

	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical != "" && cmdMatch.Score >= 0.5 {
		if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
			intent.Clarify = &ClarifyQuestion{
				Prompt: "Did you mean:",
				Options: []Intent{
					{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
					{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
				},
			}
			return intent
		}
		intent.Verb = cmdMatch.Canonical
		intent.Kind = commandKind(intent.Verb)
		intent.Confidence = clampScore(cmdMatch.Score)
		return intent
	}

	if len(ctx.Options) > 0 {
		matches, confidence, tie := matchOptions(intent.Normalised, ctx.Options)
		if tie && len(matches) >= 2 {
			intent.Clarify = &ClarifyQuestion{
				Prompt: "Did you mean:",
				Options: []Intent{
					{Raw: raw, Kind: Choice, Choice: matches[0] + 1, Confidence: confidence},
					{Raw: raw, Kind: Choice, Choice: matches[1] + 1, Confidence: confidence - 0.01},
				},
			}
			intent.Confidence = 0.5
			return intent
		}
		if len(matches) == 1 && confidence >= 0.52 {
			intent.Kind = Choice
			intent.Choice = matches[0] + 1
			intent.Confidence = confidence
			return intent
		}
	}

	intent.Clarify = &ClarifyQuestion{
		Prompt: "I couldn't map that to an option. Pick a number, or try status, breakdown, assets, leaderboard, help, quit.",
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "breakdown", "assets", "leaderboard":
		return Query
	default:
		return Command
	}
}

// parseChoiceTokens handles "2", "b", "second" and "option 2" / "pick 2" /
// "choose 2" forms.
func parseChoiceTokens(tokens []string) int {
	switch len(tokens) {
	case 1:
		return parseChoiceToken(tokens[0])
	case 2:
		switch tokens[0] {
		case "option", "pick", "choose", "select", "take":
			return parseChoiceToken(tokens[1])
		}
	}
	return 0
}

// matchOptions scores the input against each option's text: exact or
// substring containment first, then word-level fuzzy overlap. Returns
// 0-based indexes of the best matches.
func matchOptions(normalised string, options []string) ([]int, float64, bool) {
	type scored struct {
		idx   int
		score float64
	}
	inWords := tokenise(normalised)
	if len(inWords) == 0 {
		return nil, 0, false
	}

	results := make([]scored, 0, len(options))
	for i, opt := range options {
		cand := normaliseInput(opt)
		if cand == "" {
			continue
		}
		score := 0.0
		switch {
		case cand == normalised:
			score = 1.0
		case strings.Contains(cand, normalised) && len(normalised) >= 4:
			score = 0.9
		default:
			score = wordOverlapScore(inWords, tokenise(cand))
		}
		if score <= 0 {
			continue
		}
		results = append(results, scored{idx: i, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].idx < results[j].idx
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []int{best.idx, results[1].idx}, best.score, true
	}
	return []int{best.idx}, best.score, false
}

// wordOverlapScore counts how many input words appear (exactly or within
// edit distance) among the candidate's words, scaled by input length.
func wordOverlapScore(in, cand []string) float64 {
	if len(in) == 0 || len(cand) == 0 {
		return 0
	}
	hits := 0.0
	for _, w := range in {
		if len(w) < 3 {
			continue
		}
		bestHit := 0.0
		for _, c := range cand {
			if w == c {
				bestHit = 1.0
				break
			}
			if len(c) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(w, c)
			if dist <= levenshteinLimit(len(c)) {
				hit := 1.0 - (0.25 * float64(dist))
				if hit > bestHit {
					bestHit = hit
				}
			}
		}
		hits += bestHit
	}
	significant := 0
	for _, w := range in {
		if len(w) >= 3 {
			significant++
		}
	}
	if significant == 0 {
		return 0
	}
	ratio := hits / float64(significant)
	if ratio < 0.5 {
		return 0
	}
	return 0.5 + (ratio * 0.4)
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
