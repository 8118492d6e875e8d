package usecase

import (
	"slices"

	"github.com/samber/lo"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/pkg/sanitize"
)

// Lookup is one family of cross-reference maps between words, pronunciations
// and translations. The list maps accumulate in record order and are never
// deduplicated: a word listed in two records carries both translation pools.
type Lookup struct {
	WordPronunciation  map[string]string
	WordTranslations   map[string][]string
	PronunciationWords map[string][]string
	TranslationWords   map[string][]string
}

func newLookup() Lookup {
	return Lookup{
		WordPronunciation:  make(map[string]string),
		WordTranslations:   make(map[string][]string),
		PronunciationWords: make(map[string][]string),
		TranslationWords:   make(map[string][]string),
	}
}

// Index holds the raw lookups and their sanitized mirror for one dictionary view.
// It is read-only once built.
type Index struct {
	Raw       Lookup
	Sanitized Lookup

	words []string
	chars map[rune]struct{}
}

// BuildIndex derives every lookup from records.
//
// word→pronunciation keeps the last pronunciation seen for a word.
// translation→word pairs every translation of a record with every word of it.
// pronunciation→word is the inverse of the final word→pronunciation map,
// walked in the order words were first seen.
func BuildIndex(records []entity.Record) *Index {
	ix := &Index{
		Raw:       newLookup(),
		Sanitized: newLookup(),
		chars:     make(map[rune]struct{}),
	}

	for _, rec := range records {
		words := sanitize.Strings(rec.Word)
		translations := sanitize.Strings(rec.Translation)

		for i, w := range rec.Word {
			for _, r := range w {
				ix.chars[r] = struct{}{}
			}
			if _, seen := ix.Raw.WordPronunciation[w]; !seen {
				ix.words = append(ix.words, w)
			}
			ix.Raw.WordPronunciation[w] = rec.Pronunciation[i]
			ix.Raw.WordTranslations[w] = append(ix.Raw.WordTranslations[w], rec.Translation...)

			ix.Sanitized.WordPronunciation[words[i]] = sanitize.String(rec.Pronunciation[i])
			ix.Sanitized.WordTranslations[words[i]] = append(ix.Sanitized.WordTranslations[words[i]], translations...)
		}

		for j, t := range rec.Translation {
			ix.Raw.TranslationWords[t] = append(ix.Raw.TranslationWords[t], rec.Word...)
			ix.Sanitized.TranslationWords[translations[j]] = append(ix.Sanitized.TranslationWords[translations[j]], words...)
		}
	}

	for _, w := range ix.words {
		p := ix.Raw.WordPronunciation[w]
		ix.Raw.PronunciationWords[p] = append(ix.Raw.PronunciationWords[p], w)

		sp := sanitize.String(p)
		ix.Sanitized.PronunciationWords[sp] = append(ix.Sanitized.PronunciationWords[sp], sanitize.String(w))
	}
	return ix
}

// Words returns the distinct words of the view in first-seen order.
func (ix *Index) Words() []string {
	return slices.Clone(ix.words)
}

// Alphabet returns every character used by a word, sorted.
func (ix *Index) Alphabet() string {
	runes := lo.Keys(ix.chars)
	slices.Sort(runes)
	return string(runes)
}
