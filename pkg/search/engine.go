package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
)

// Match fields in priority order. A card reports the first field that
// matched.
const (
	MatchNone        = "none"
	MatchTitle       = "title"
	MatchDescription = "description"
	MatchTag         = "tag"
	MatchBody        = "body"
)

const (
	excerptWindow   = 80
	emptyQueryLimit = 5
	ellipsis        = "..."
)

// Engine answers free-text searches and multi-select filters over the
// generated card collection. Every call is a pure synchronous transform;
// the engine holds no state beyond the card slice it was built with.
type Engine struct {
	cards []data.ScenarioCard
}

func NewEngine(cards []data.ScenarioCard) *Engine {
	return &Engine{cards: cards}
}

func (e *Engine) Cards() []data.ScenarioCard {
	return e.cards
}

// Match is one search hit. Excerpt is only set for body matches and holds
// a window of text around the first occurrence.
type Match struct {
	Card    data.ScenarioCard
	Field   string
	Excerpt string
}

// Search runs a case-insensitive substring search over title, description,
// tags and body, in that order. An empty query returns the first cards in
// collection order with field "none".
func (e *Engine) Search(query string) []Match {
	if query == "" {
		limit := emptyQueryLimit
		if len(e.cards) < limit {
			limit = len(e.cards)
		}
		matches := make([]Match, 0, limit)
		for _, card := range e.cards[:limit] {
			matches = append(matches, Match{Card: card, Field: MatchNone})
		}
		return matches
	}

	needle := strings.ToLower(query)
	var matches []Match
	for _, card := range e.cards {
		switch {
		case strings.Contains(strings.ToLower(card.Title), needle):
			matches = append(matches, Match{Card: card, Field: MatchTitle})
		case strings.Contains(strings.ToLower(card.Description), needle):
			matches = append(matches, Match{Card: card, Field: MatchDescription})
		case anyTagContains(card.Tags, needle):
			matches = append(matches, Match{Card: card, Field: MatchTag})
		case strings.Contains(strings.ToLower(card.Body), needle):
			matches = append(matches, Match{
				Card:    card,
				Field:   MatchBody,
				Excerpt: excerpt(card.Body, needle),
			})
		}
	}
	return matches
}

func anyTagContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// excerpt cuts a window around the first occurrence of needle, clamped to
// the string bounds and to rune boundaries, with ellipsis markers on the
// truncated ends. The occurrence is located on the original body so byte
// offsets stay valid when lowercasing would change rune widths.
func excerpt(body, needle string) string {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(needle))
	if err != nil {
		return ""
	}
	loc := pattern.FindStringIndex(body)
	if loc == nil {
		return ""
	}

	start := loc[0] - excerptWindow
	if start < 0 {
		start = 0
	}
	end := loc[1] + excerptWindow
	if end > len(body) {
		end = len(body)
	}
	for start > 0 && !utf8.RuneStart(body[start]) {
		start--
	}
	for end < len(body) && !utf8.RuneStart(body[end]) {
		end++
	}

	window := body[start:end]
	if start > 0 {
		window = ellipsis + window
	}
	if end < len(body) {
		window = window + ellipsis
	}
	return window
}

// Segment is one slice of a highlighted string. Matched segments carry the
// original casing of the source text.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text on case-insensitive occurrences of the escaped
// query so the caller can render matches distinctly.
func Highlight(text, query string) []Segment {
	if query == "" || text == "" {
		return []Segment{{Text: text}}
	}

	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(query))
	if err != nil {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// Filters is one independent multi-select filter draft. Empty slices mean
// the category places no constraint.
type Filters struct {
	Search       string   `json:"search"`
	Types        []string `json:"types"`
	Difficulties []string `json:"difficulties"`
	WorkloadTags []string `json:"workloadTags"`
}

func (f Filters) Empty() bool {
	return f.Search == "" && len(f.Types) == 0 && len(f.Difficulties) == 0 && len(f.WorkloadTags) == 0
}

// MatchingSlugs returns the slugs of cards satisfying every non-empty
// criterion: title contains the search text, type and difficulty are among
// the selections, and at least one workload tag is selected. A nil result
// means no filter is active and everything should show.
func (e *Engine) MatchingSlugs(filters Filters) map[string]bool {
	if filters.Empty() {
		return nil
	}

	needle := strings.ToLower(filters.Search)
	matches := map[string]bool{}
	for _, card := range e.cards {
		if filters.Search != "" && !strings.Contains(strings.ToLower(card.Title), needle) {
			continue
		}
		if len(filters.Types) > 0 && !contains(filters.Types, card.Type) {
			continue
		}
		if len(filters.Difficulties) > 0 && !contains(filters.Difficulties, card.Difficulty) {
			continue
		}
		if len(filters.WorkloadTags) > 0 && !anyIn(card.WorkloadTags, filters.WorkloadTags) {
			continue
		}
		matches[card.Slug] = true
	}
	return matches
}

// Options are the selectable filter values derived from the collection.
type Options struct {
	Types        []string `json:"types"`
	Difficulties []string `json:"difficulties"`
	WorkloadTags []string `json:"workloadTags"`
}

// Options derives the distinct sorted types and workload tags, and the
// difficulty tiers present in canonical order.
func (e *Engine) Options() Options {
	typeSet := map[string]bool{}
	tagSet := map[string]bool{}
	difficultySet := map[string]bool{}
	for _, card := range e.cards {
		typeSet[card.Type] = true
		difficultySet[card.Difficulty] = true
		for _, tag := range card.WorkloadTags {
			tagSet[tag] = true
		}
	}

	var difficulties []string
	for _, tier := range data.Difficulties {
		if difficultySet[tier] {
			difficulties = append(difficulties, tier)
		}
	}

	return Options{
		Types:        sortedKeys(typeSet),
		Difficulties: difficulties,
		WorkloadTags: sortedKeys(tagSet),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func anyIn(values []string, selected []string) bool {
	for _, value := range values {
		if contains(selected, value) {
			return true
		}
	}
	return false
}
