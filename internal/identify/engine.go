// Package identify ranks catalog plants against what a user observed: growth
// form, flowering season, habitat, and visible features.
package identify

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/floractl/internal/catalog"
)

// Result bounds and the score given to padding entries.
const (
	MaxResults = 6
	MinResults = 3
	TopUpScore = 1
)

// Criterion weights.
const (
	weightType          = 3
	weightSeason        = 2
	weightSeasonPartial = 1
	weightHabitat       = 2
	weightFeature       = 1
)

// Match tags recorded on a MatchResult.
const (
	MatchType          = "type"
	MatchSeason        = "season"
	MatchSeasonPartial = "season_partial"
	MatchHabitat       = "habitat"
	MatchRecommended   = "recommended"
	featurePrefix      = "feature_"
)

// Flowering-season words of the catalog's language. A winter selection
// partially matches a plant whose season text mentions none of them.
var warmSeasonTokens = []string{"весна", "лето", "осень"}

// FeatureMatch returns the match tag recorded for a feature.
func FeatureMatch(tag string) string {
	return featurePrefix + tag
}

// MatchResult pairs a plant with its score and the criteria that produced it.
type MatchResult struct {
	Plant   catalog.Plant `json:"plant"`
	Score   int           `json:"score"`
	Matches []string      `json:"matches"`
}

// Score evaluates every criterion for one plant. A criterion the user has not
// chosen contributes nothing.
func Score(p catalog.Plant, sel Selections) (int, []string) {
	score := 0
	matches := []string{}

	if sel.Type != "" && string(p.Type) == sel.Type {
		score += weightType
		matches = append(matches, MatchType)
	}

	if sel.Season != "" {
		text := strings.ToLower(p.FloweringSeason)
		switch {
		case strings.Contains(text, strings.ToLower(sel.Season)):
			score += weightSeason
			matches = append(matches, MatchSeason)
		case sel.Season == SeasonWinter && !containsAny(text, warmSeasonTokens):
			score += weightSeasonPartial
			matches = append(matches, MatchSeasonPartial)
		}
	}

	if sel.Habitat != "" && string(p.Habitat) == sel.Habitat {
		score += weightHabitat
		matches = append(matches, MatchHabitat)
	}

	seen := make(map[string]bool, len(sel.Features))
	for _, tag := range sel.Features {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if p.HasFeature(tag) {
			score += weightFeature
			matches = append(matches, FeatureMatch(tag))
		}
	}

	return score, matches
}

// Identify scores the whole catalog and returns at most MaxResults plants,
// best first, ties in catalog order. When only one or two plants match, the
// list is padded from the start of the catalog up to MinResults entries.
// No match at all yields an empty result.
func Identify(plants []catalog.Plant, sel Selections) []MatchResult {
	results := make([]MatchResult, 0, MaxResults)
	for _, p := range plants {
		score, matches := Score(p, sel)
		if score == 0 {
			continue
		}
		results = append(results, MatchResult{Plant: p, Score: score, Matches: matches})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	if len(results) > 0 && len(results) < MinResults {
		results = topUp(plants, results)
	}
	return results
}

func topUp(plants []catalog.Plant, results []MatchResult) []MatchResult {
	present := make(map[string]bool, len(results))
	for _, r := range results {
		present[r.Plant.ID] = true
	}
	for _, p := range plants {
		if len(results) >= MinResults {
			break
		}
		if present[p.ID] {
			continue
		}
		present[p.ID] = true
		results = append(results, MatchResult{
			Plant:   p,
			Score:   TopUpScore,
			Matches: []string{MatchRecommended},
		})
	}
	return results
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
