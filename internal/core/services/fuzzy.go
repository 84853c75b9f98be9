package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// Scoring constants. The threshold and ceiling are empirical values carried
// over from the original tuning; changing them shifts which near-misses are
// accepted, so they are kept exact.
const (
	// matchThreshold is the minimum hybrid score for a confident match.
	matchThreshold = 0.6

	// scoreCeiling caps the hybrid score so token and metadata bonuses on
	// normal-length titles cannot alone promote a very poor base match
	// above the threshold.
	scoreCeiling = 1.5

	// tokenBonusWeight is added per whitespace token shared between the
	// query and the title.
	tokenBonusWeight = 0.1

	// metaBonusWeight is added per query token found anywhere in the
	// entry's synopsis/genre/director/cast text.
	metaBonusWeight = 0.05
)

// TitleMatcher resolves a free-form, possibly misspelled or partial movie
// title to the single best catalog entry using a hybrid similarity score.
type TitleMatcher struct {
	index *TitleIndex
}

// NewTitleMatcher creates a matcher over the given index.
func NewTitleMatcher(index *TitleIndex) *TitleMatcher {
	return &TitleMatcher{index: index}
}

// FindBestTitle returns the original-cased title of the best-scoring catalog
// entry, or ok=false when the query is empty, the index is empty, or no
// entry reaches the confidence threshold.
//
// The scan is linear over all entries; the true maximum requires visiting
// every entry, so there is no early exit. Ties keep the first-seen maximum,
// making the result stable in index build order.
func (m *TitleMatcher) FindBestTitle(ctx context.Context, query string) (string, bool) {
	q := normalizeQuery(query)
	if q == "" {
		return "", false
	}

	entries := m.index.Entries(ctx)
	if len(entries) == 0 {
		return "", false
	}

	bestTitle := ""
	bestScore := 0.0
	for i := range entries {
		score := hybridScore(q, &entries[i])
		if score > bestScore {
			bestScore = score
			bestTitle = entries[i].title
		}
	}

	if bestScore < matchThreshold {
		logger.Debug("Fuzzy match rejected: query=%q best=%q score=%.3f", q, bestTitle, bestScore)
		return "", false
	}

	logger.Debug("Fuzzy match: query=%q -> %q (score %.3f)", q, bestTitle, bestScore)
	return bestTitle, true
}

// hybridScore combines normalised edit distance with token-overlap and
// metadata bonuses:
//
//	base  = 1 - levenshtein(q, t) / max(len(q), len(t))
//	score = clamp(base + 0.1*|tokens(q) ∩ tokens(t)| + 0.05*metaHits, 0, 1.5)
//
// where metaHits counts distinct query tokens occurring as substrings of the
// entry's search text. Edit distance alone penalises short/long mismatches
// too coarsely for multi-word titles; the bonuses let partial or
// thematically-described queries still surface the intended title.
func hybridScore(q string, e *indexEntry) float64 {
	t := e.normTitle
	if q == "" || t == "" {
		return 0
	}

	maxLen := utf8.RuneCountInString(q)
	if n := utf8.RuneCountInString(t); n > maxLen {
		maxLen = n
	}
	base := 1.0 - float64(levenshtein(q, t))/float64(maxLen)

	titleTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(t) {
		titleTokens[tok] = struct{}{}
	}

	// Query tokens form a set: duplicates count once for both bonuses.
	queryTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(q) {
		queryTokens[tok] = struct{}{}
	}

	overlap := 0
	metaHits := 0
	for tok := range queryTokens {
		if _, ok := titleTokens[tok]; ok {
			overlap++
		}
		if strings.Contains(e.searchText, tok) {
			metaHits++
		}
	}

	score := base + tokenBonusWeight*float64(overlap) + metaBonusWeight*float64(metaHits)
	if score < 0 {
		score = 0
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return score
}

// levenshtein computes the classic unit-cost edit distance between two
// strings, operating on runes. It uses the standard row-by-row dynamic
// programme with a single rolling row buffer.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}
