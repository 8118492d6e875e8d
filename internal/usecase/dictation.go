package usecase

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/pkg/sampler"
	"github.com/eslsoft/vocquiz/pkg/sanitize"
)

// dictationCandidates returns the distinct words of the view longer than one
// character, in first-seen order.
func dictationCandidates(ix *Index) []string {
	return lo.Filter(ix.Words(), func(w string, _ int) bool {
		return utf8.RuneCountInString(w) > 1
	})
}

// SelectDictationSet picks n distinct multi-character words from the view.
// When n covers every candidate the whole set is returned shuffled; otherwise
// words are drawn without replacement under the dictation distribution. The
// quiz retention window is neither consulted nor updated.
func (u *quizUsecase) SelectDictationSet(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", entity.ErrInvalidDictationSize, n)
	}
	s := u.session
	if s == nil || !s.Built() {
		return nil, entity.ErrDictionaryNotLoaded
	}

	candidates := dictationCandidates(s.index)
	if n >= len(candidates) {
		out := slices.Clone(candidates)
		u.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out, nil
	}

	smp := sampler.New(u.settings.DictationDistribution, sampler.WithRand(u.rng))
	drawn := make(sampler.Set, n)
	out := make([]string, 0, n)
	for len(out) < n {
		i, err := smp.Select(len(candidates), drawn)
		if err != nil {
			return nil, fmt.Errorf("select dictation word: %w", err)
		}
		drawn.Add(i)
		out = append(out, candidates[i])
	}

	u.log().WithFields(logrus.Fields{
		"requested":    n,
		"candidates":   len(candidates),
		"distribution": smp.Distribution().String(),
	}).Debug("dictation set selected")
	return out, nil
}

// VerifyDictation compares a written word with the dictated one after sanitizing both.
func VerifyDictation(expected, written string) bool {
	w := sanitize.String(written)
	return w != "" && w == sanitize.String(expected)
}
