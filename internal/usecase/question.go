package usecase

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/pkg/sanitize"
)

// Question is one quiz prompt together with its expected answer.
//
// Words, Pronunciations and Translations are aligned: Pronunciations[i] and
// Translations[i] belong to Words[i]. A Question keeps the index it was drawn
// from, so rebuilding the session mid-question does not change its answer.
type Question struct {
	Category entity.Category
	Prompt   string
	Position int

	Words          []string
	Pronunciations []string
	Translations   [][]string

	index *Index
}

func newQuestion(category entity.Category, prompt string, position int, ix *Index) *Question {
	q := &Question{
		Category: category,
		Prompt:   prompt,
		Position: position,
		index:    ix,
	}

	switch category {
	case entity.CategoryWord:
		q.Words = []string{prompt}
	case entity.CategoryPronunciation:
		q.Words = slices.Clone(ix.Raw.PronunciationWords[prompt])
	case entity.CategoryTranslation:
		q.Words = slices.Clone(ix.Raw.TranslationWords[prompt])
	}

	q.Pronunciations = lo.Map(q.Words, func(w string, _ int) string {
		return ix.Raw.WordPronunciation[w]
	})
	q.Translations = lo.Map(q.Words, func(w string, _ int) []string {
		if category == entity.CategoryTranslation {
			return []string{prompt}
		}
		return slices.Clone(ix.Raw.WordTranslations[w])
	})
	return q
}

// Verify checks an answer. Every input is sanitized before comparison and the
// field shown as the prompt is ignored. A value missing from the index makes
// the answer wrong.
func (q *Question) Verify(word, pronunciation, translation string) bool {
	word = sanitize.String(word)
	translation = sanitize.String(translation)

	switch q.Category {
	case entity.CategoryPronunciation:
		for i, w := range q.Words {
			if sanitize.String(w) != word {
				continue
			}
			if containsSubstring(sanitize.Strings(q.Translations[i]), translation) {
				return true
			}
		}
		return false

	case entity.CategoryWord:
		key := sanitize.String(q.Prompt)
		expected, ok := q.index.Sanitized.WordPronunciation[key]
		if !ok {
			return false
		}
		return matchesPronunciation(pronunciation, expected) &&
			containsSubstring(q.index.Sanitized.WordTranslations[key], translation)

	case entity.CategoryTranslation:
		words := q.index.Sanitized.TranslationWords[sanitize.String(q.Prompt)]
		if !containsSubstring(words, word) {
			return false
		}
		expected, ok := q.index.Sanitized.WordPronunciation[word]
		if !ok {
			return false
		}
		return matchesPronunciation(pronunciation, expected)
	}
	return false
}

// Solution is the expected answer rendered for display.
type Solution struct {
	Word          string
	Pronunciation string
	Translation   string
}

func (q *Question) Solution() Solution {
	var translations []string
	for _, t := range q.Translations {
		translations = append(translations, t...)
	}
	return Solution{
		Word:          strings.Join(lo.Uniq(q.Words), " / "),
		Pronunciation: strings.Join(lo.Uniq(q.Pronunciations), " / "),
		Translation:   strings.Join(lo.Uniq(translations), " / "),
	}
}

// pronunciationForms are the spellings of a typed pronunciation that are tried.
func pronunciationForms(p string) []string {
	return []string{p, strings.ReplaceAll(p, " ", ""), strings.ToLower(p)}
}

func matchesPronunciation(given, expected string) bool {
	return lo.ContainsBy(pronunciationForms(given), func(p string) bool {
		return sanitize.String(p) == expected
	})
}

// containsSubstring reports whether needle occurs inside any sanitized value.
// Partial answers such as "hell" for "hello" are accepted; an empty needle never is.
func containsSubstring(haystack []string, needle string) bool {
	if needle == "" {
		return false
	}
	return lo.ContainsBy(haystack, func(h string) bool {
		return strings.Contains(h, needle)
	})
}
