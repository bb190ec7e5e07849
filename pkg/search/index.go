package search

import (
	"sort"
	"strings"

	"github.com/MovieMaker93/landscape2/pkg/models"
)

// Relevance tiers. Prefix matches on the name beat substring matches,
// which beat tag matches, which beat description matches.
const (
	scorePrefix      = 4.0
	scoreSubstring   = 3.0
	scoreTag         = 2.0
	scoreDescription = 1.0
)

// entry is one indexed item with pre-folded text.
type entry struct {
	id          string
	name        string
	tags        []string
	description string
}

// Match is a single ranked search hit.
type Match struct {
	ID    string
	Score float64
}

// Index is a queryable text index over item names, tags and descriptions.
// Building is done once per catalog snapshot; queries never mutate it.
type Index struct {
	entries []entry
}

// Build indexes the given items. Item order is preserved so that equal
// scores resolve deterministically.
func Build(items []models.Item) *Index {
	ix := &Index{entries: make([]entry, 0, len(items))}
	for _, item := range items {
		e := entry{
			id:          item.ID,
			name:        foldFields(item.Name),
			description: foldFields(item.Description),
		}
		for _, tag := range item.Tags {
			e.tags = append(e.tags, Fold(tag))
		}
		ix.entries = append(ix.entries, e)
	}
	return ix
}

// Query returns matches ranked by relevance, ties broken by item id
// ascending. The second return value reports whether the query restricts
// the result at all: an empty or whitespace-only query places no
// restriction, which is distinct from a query with zero matches.
func (ix *Index) Query(text string) ([]Match, bool) {
	needle := foldFields(text)
	if needle == "" {
		return nil, false
	}

	matches := make([]Match, 0)
	for _, e := range ix.entries {
		score := e.score(needle)
		if score > 0 {
			matches = append(matches, Match{ID: e.id, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})

	return matches, true
}

// MatchSet returns the matching ids as a set for O(1) membership tests,
// along with the restriction flag from Query.
func (ix *Index) MatchSet(text string) (map[string]bool, bool) {
	matches, restricted := ix.Query(text)
	if !restricted {
		return nil, false
	}
	set := make(map[string]bool, len(matches))
	for _, m := range matches {
		set[m.ID] = true
	}
	return set, true
}

func (e *entry) score(needle string) float64 {
	best := 0.0
	if strings.HasPrefix(e.name, needle) {
		best = scorePrefix
	} else if strings.Contains(e.name, needle) {
		best = scoreSubstring
	}
	if best < scoreTag {
		for _, tag := range e.tags {
			if strings.Contains(tag, needle) {
				best = scoreTag
				break
			}
		}
	}
	if best < scoreDescription && strings.Contains(e.description, needle) {
		best = scoreDescription
	}
	return best
}
