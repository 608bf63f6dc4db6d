package quote

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Similarity thresholds and result caps. The two thresholds were tuned
// for different flows (batch correction of a pasted dish list vs live
// narrowing while typing) and are intentionally kept separate.
const (
	SuggestThreshold      = 0.35
	AutocompleteThreshold = 0.30
	SuggestLimit          = 3
	AutocompleteLimit     = 5
)

// Match is a resolved input line: a catalog entry plus the parsed
// quantity, routed to the line-item builder.
type Match struct {
	Entry    CatalogEntry `json:"entry"`
	Quantity int          `json:"quantity"`
	Explicit bool         `json:"explicit"`
}

// SuggestionCandidate is a catalog entry ranked by similarity against
// an unresolved input line.
type SuggestionCandidate struct {
	Entry CatalogEntry `json:"entry"`
	Score float64      `json:"score"`
}

// UnmatchedEntry is an input line that failed catalog resolution,
// paired with its ranked suggestions. This is data, not an error:
// the list is how the engine reports "could not resolve" upward.
type UnmatchedEntry struct {
	Raw         string                `json:"raw"`
	Suggestions []SuggestionCandidate `json:"suggestions"`
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a string and strips diacritics so that "Gà Luộc"
// and "ga luoc" compare equal.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return out
}

// Match resolves a candidate dish name by containment: the entry name
// contains the candidate, or the candidate contains the first two
// tokens of the entry name. First catalog hit wins; no scoring here.
func (c *Catalog) Match(name string) (CatalogEntry, bool) {
	candidate := Normalize(name)
	if candidate == "" {
		return CatalogEntry{}, false
	}
	for i, entryName := range c.normalized {
		if strings.Contains(entryName, candidate) {
			return c.entries[i], true
		}
		if prefix := firstTokens(entryName, 2); prefix != "" && strings.Contains(candidate, prefix) {
			return c.entries[i], true
		}
	}
	return CatalogEntry{}, false
}

// Suggest ranks catalog entries by similarity against a candidate
// name, dropping scores below threshold and capping at limit. Ties
// keep catalog order (the sort is stable).
func (c *Catalog) Suggest(name string, threshold float64, limit int) []SuggestionCandidate {
	candidate := Normalize(name)
	if candidate == "" || limit <= 0 {
		return nil
	}

	var ranked []SuggestionCandidate
	for i, entryName := range c.normalized {
		score := similarity(candidate, entryName)
		if score >= threshold {
			ranked = append(ranked, SuggestionCandidate{Entry: c.entries[i], Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Resolve parses a raw dish blob and partitions the lines into matches
// and unmatched entries with suggestions.
func (c *Catalog) Resolve(input string, defaultQty int) ([]Match, []UnmatchedEntry) {
	var matches []Match
	var unmatched []UnmatchedEntry

	for _, tok := range ParseLines(input, defaultQty) {
		if entry, ok := c.Match(tok.Name); ok {
			matches = append(matches, Match{Entry: entry, Quantity: tok.Quantity, Explicit: tok.Explicit})
			continue
		}
		unmatched = append(unmatched, UnmatchedEntry{
			Raw:         tok.Raw,
			Suggestions: c.Suggest(tok.Name, SuggestThreshold, SuggestLimit),
		})
	}
	return matches, unmatched
}

// Similarity scores two names in [0,1]. Identical normalized strings
// score 1.0; the score decays with edit distance, with a token-overlap
// floor so word-order swaps are not over-punished.
func Similarity(a, b string) float64 {
	return similarity(Normalize(a), Normalize(b))
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	edit := 1 - float64(dist)/float64(maxLen)
	if edit < 0 {
		edit = 0
	}

	if dice := tokenDice(a, b); dice > edit {
		return dice
	}
	return edit
}

func tokenDice(a, b string) float64 {
	ta, tb := strings.Fields(a), strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	set := make(map[string]int, len(ta))
	for _, t := range ta {
		set[t]++
	}
	common := 0
	for _, t := range tb {
		if set[t] > 0 {
			set[t]--
			common++
		}
	}
	return 2 * float64(common) / float64(len(ta)+len(tb))
}

func firstTokens(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
