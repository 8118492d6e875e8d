package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/pkg/sampler"
)

func TestSelectQuestion_NotLoaded(t *testing.T) {
	uc := NewQuizUsecase(&fakeDictionaryRepo{}, entity.DefaultSettings(), logrus.New())

	_, err := uc.SelectQuestion(entity.ModeRandom)
	assert.ErrorIs(t, err, entity.ErrDictionaryNotLoaded)
	assert.ErrorIs(t, uc.BuildIndices(), entity.ErrDictionaryNotLoaded)
	assert.False(t, uc.VerifyAnswer("a", "b", "c"), "answer without a question must be wrong")
}

func TestReload_PropagatesErrors(t *testing.T) {
	boom := errors.New("offline")
	uc := NewQuizUsecase(&fakeDictionaryRepo{err: boom}, entity.DefaultSettings(), logrus.New())
	assert.ErrorIs(t, uc.Reload(context.Background()), boom)

	bad := []entity.Record{rec([]string{"a", "b"}, []string{"x"}, []string{"t"})}
	uc = NewQuizUsecase(&fakeDictionaryRepo{records: bad}, entity.DefaultSettings(), logrus.New())
	assert.ErrorIs(t, uc.Reload(context.Background()), entity.ErrMisalignedRecord)
}

func TestSelectQuestion_InvalidMode(t *testing.T) {
	uc := newTestUsecase(t, sampleRecords())
	_, err := uc.SelectQuestion(entity.Mode("spelling"))
	assert.ErrorIs(t, err, entity.ErrInvalidMode)
}

func TestSelectQuestion_FixedModeAnsweredCorrectly(t *testing.T) {
	uc := newTestUsecase(t, sampleRecords())
	for i := 0; i < 50; i++ {
		q, err := uc.SelectQuestion(entity.Mode(entity.CategoryWord))
		require.NoError(t, err)
		require.Equal(t, entity.CategoryWord, q.Category)

		record := uc.Session().View()[q.Position]
		require.Contains(t, record.Word, q.Prompt)

		pron := uc.Session().Index().Raw.WordPronunciation[q.Prompt]
		trans := uc.Session().Index().Raw.WordTranslations[q.Prompt][0]
		require.True(t, uc.VerifyAnswer("", pron, trans), "correct answer %q/%q rejected for %q", pron, trans, q.Prompt)
	}
}

func TestSelectQuestion_RandomModeUsesEveryCategory(t *testing.T) {
	uc := newTestUsecase(t, sampleRecords())
	seen := map[entity.Category]bool{}
	for i := 0; i < 200; i++ {
		q, err := uc.SelectQuestion(entity.ModeRandom)
		require.NoError(t, err)
		seen[q.Category] = true
	}
	for _, c := range entity.Categories() {
		assert.True(t, seen[c], "category %s never drawn", c)
	}
}

func TestSelectQuestion_RetentionWindow(t *testing.T) {
	uc := newTestUsecase(t, numberedRecords(30))
	var history []int
	for i := 0; i < 300; i++ {
		q, err := uc.SelectQuestion(entity.ModeRandom)
		require.NoError(t, err)

		recent := history[max(len(history)-entity.DefaultRetention, 0):]
		require.False(t, slices.Contains(recent, q.Position), "draw %d repeated position %d within %v", i, q.Position, recent)
		history = append(history, q.Position)
		require.LessOrEqual(t, uc.Session().Recent().Len(), entity.DefaultRetention)
	}
}

func TestApplySetting_TestRange(t *testing.T) {
	uc := newTestUsecase(t, numberedRecords(20))
	require.NoError(t, uc.ApplySetting("test_range=0,5"))
	assert.Len(t, uc.Session().View(), 5)
	assert.Equal(t, 4, uc.Session().Recent().Capacity())

	for i := 0; i < 100; i++ {
		q, err := uc.SelectQuestion(entity.ModeRandom)
		require.NoError(t, err)
		pos := uc.Session().DictionaryPosition(q.Position)
		require.True(t, pos >= 0 && pos < 5, "drew dictionary position %d outside 0,5", pos)
	}
}

func TestApplySetting_Filter(t *testing.T) {
	uc := newTestUsecase(t, numberedRecords(20))
	require.NoError(t, uc.ApplySetting("filter=position >= 10 && word.exists(w, w != 'w15')"))
	require.Len(t, uc.Session().View(), 9)
	for i := range uc.Session().View() {
		pos := uc.Session().DictionaryPosition(i)
		assert.True(t, pos >= 10 && pos != 15, "filtered view contains dictionary position %d", pos)
	}

	require.NoError(t, uc.ApplySetting("filter=position > 100"))
	_, err := uc.SelectQuestion(entity.ModeRandom)
	assert.ErrorIs(t, err, sampler.ErrEmptyCandidates)
}

func TestApplySetting_InvalidLeavesStateUnchanged(t *testing.T) {
	uc := newTestUsecase(t, numberedRecords(20))
	before := uc.Settings()
	viewSize := len(uc.Session().View())

	for _, assignment := range []string{"distribution=bell", "retention=-1", "nonsense", "filter=position +", "filter=word"} {
		assert.ErrorIs(t, uc.ApplySetting(assignment), entity.ErrInvalidSetting, assignment)
	}
	assert.Equal(t, before, uc.Settings())
	assert.Len(t, uc.Session().View(), viewSize)
}

func TestQuestion_SurvivesRebuild(t *testing.T) {
	uc := newTestUsecase(t, sampleRecords())
	q, err := uc.SelectQuestion(entity.Mode(entity.CategoryTranslation))
	require.NoError(t, err)
	words := slices.Clone(q.Words)

	require.NoError(t, uc.ApplySetting("test_range=4,5"))
	assert.Equal(t, words, q.Words)

	pron := q.index.Raw.WordPronunciation[q.Words[0]]
	assert.True(t, uc.VerifyAnswer(q.Words[0], pron, ""), "answer %q/%q rejected after rebuild", q.Words[0], pron)
}
