package queries

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"hotel-booking/internal/domain/hotel"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const minSuggestionScore = 0.5

var bagSizes = []int{2, 3}

type suggestionCandidate struct {
	text     string
	field    SuggestionField
	hotelIDs []string
}

type suggester struct {
	candidates map[string]*suggestionCandidate // keyed by normalized text
	matcher    *closestmatch.ClosestMatch
}

func newSuggester(hotels []*hotel.Hotel) *suggester {
	s := &suggester{candidates: make(map[string]*suggestionCandidate)}
	keys := make([]string, 0, len(hotels)*2)

	add := func(text string, field SuggestionField, hotelID string) {
		key := normalizeInput(text)
		if key == "" {
			return
		}
		if c, ok := s.candidates[key]; ok {
			if !slices.Contains(c.hotelIDs, hotelID) {
				c.hotelIDs = append(c.hotelIDs, hotelID)
			}
			return
		}
		s.candidates[key] = &suggestionCandidate{text: text, field: field, hotelIDs: []string{hotelID}}
		keys = append(keys, key)
	}
	for _, h := range hotels {
		add(h.Name(), SuggestionFieldName, h.ID())
		add(h.Location(), SuggestionFieldLocation, h.ID())
	}

	s.matcher = closestmatch.New(keys, bagSizes)
	return s
}

func (s *suggester) suggest(query string, limit int) []SuggestionView {
	q := normalizeInput(query)
	if q == "" || limit <= 0 || len(s.candidates) == 0 {
		return []SuggestionView{}
	}

	out := make([]SuggestionView, 0, limit)
	for _, key := range s.matcher.ClosestN(q, len(s.candidates)) {
		c, ok := s.candidates[key]
		if !ok {
			continue
		}
		score := bestSimilarity(q, key)
		if score < minSuggestionScore {
			continue
		}
		out = append(out, SuggestionView{
			Text:     c.text,
			Field:    c.field,
			HotelIDs: slices.Clone(c.hotelIDs),
			Score:    score,
		})
	}

	slices.SortStableFunc(out, func(a, b SuggestionView) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Text, b.Text)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// bestSimilarity compares the query against the whole candidate and each of
// its words, so "jakrta" still lands on "jakarta pusat".
func bestSimilarity(query, candidate string) float64 {
	best := similarity(query, candidate)
	for _, word := range strings.Fields(candidate) {
		best = max(best, similarity(query, word))
	}
	return best
}

func similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return max(0, 1.0-float64(distance)/float64(maxLen))
}
