package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eslsoft/vocquiz/internal/entity"
)

func TestQuestion_VerifyWord(t *testing.T) {
	ix := BuildIndex(sampleRecords())
	q := newQuestion(entity.CategoryWord, "你好", 0, ix)

	cases := []struct {
		name          string
		pronunciation string
		translation   string
		want          bool
	}{
		{"exact", "nǐ hǎo", "hello", true},
		{"unaccented with space", "ni hao", "hi", true},
		{"upper case", "NI HAO", "HELLO", true},
		{"partial translation", "nihao", "hell", true},
		{"empty translation", "nihao", "", false},
		{"wrong translation", "nihao", "goodbye", false},
		{"wrong pronunciation", "ni", "hello", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, q.Verify("ignored", c.pronunciation, c.translation))
		})
	}
}

func TestQuestion_VerifySharedPronunciation(t *testing.T) {
	ix := BuildIndex(sampleRecords())
	q := newQuestion(entity.CategoryPronunciation, "shì", 1, ix)

	assert.Equal(t, []string{"是", "事"}, q.Words)
	assert.True(t, q.Verify("事", "", "thing"))
	assert.True(t, q.Verify("是", "", "to be"))
	assert.False(t, q.Verify("是", "", "matter"), "translation of another word must be rejected")
	assert.False(t, q.Verify("十", "", "ten"), "十 has a different tone")
}

func TestQuestion_VerifySharedPlainPronunciation(t *testing.T) {
	ix := BuildIndex([]entity.Record{
		rec([]string{"是"}, []string{"shi"}, []string{"to be"}),
		rec([]string{"事"}, []string{"shi"}, []string{"matter"}),
	})
	q := newQuestion(entity.CategoryPronunciation, "shi", 0, ix)

	assert.True(t, q.Verify("是", "", "to be"))
	assert.True(t, q.Verify("事", "", "matter"))
	assert.False(t, q.Verify("事", "", "to be"))
	assert.False(t, q.Verify("是", "", "matter"))
}

func TestQuestion_VerifyTranslation(t *testing.T) {
	ix := BuildIndex(sampleRecords())
	q := newQuestion(entity.CategoryTranslation, "mother", 4, ix)

	assert.True(t, q.Verify("妈妈", "mama", ""))
	assert.True(t, q.Verify("妈", "mā", ""))
	assert.False(t, q.Verify("妈妈", "ma", ""), "pronunciation of the other word")
	assert.False(t, q.Verify("你好", "nihao", ""), "word outside the translation")
	assert.False(t, q.Verify("", "", ""))
}

func TestQuestion_Solution(t *testing.T) {
	ix := BuildIndex(sampleRecords())
	q := newQuestion(entity.CategoryPronunciation, "shì", 1, ix)

	assert.Equal(t, Solution{Word: "是 / 事", Pronunciation: "shì", Translation: "to be / matter / thing"}, q.Solution())
}
