package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"spaces removed", "ni hao", "nihao"},
		{"tabs and newlines removed", "ni\thao\n", "nihao"},
		{"lowercased", "Hello World", "helloworld"},
		{"pinyin tone marks", "nǐ hǎo", "nihao"},
		{"stacked marks", "lǜ", "lu"},
		{"uppercase accented", "ÉCOLE", "ecole"},
		{"cedilla and tilde", "façade señor", "facadesenor"},
		{"cjk untouched", "你好", "你好"},
		{"mixed", "Nǐ Hǎo 你好", "nihao你好"},
		{"no decomposition kept", "straße", "straße"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, String(tc.input))
		})
	}
}

func TestStringIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "Hello", "nǐ hǎo", "ǅemal", "ÅNGSTRÖM", "你 好", "ﬁ ligature", "́alone", "Ωmega"}
	for _, in := range inputs {
		once := String(in)
		assert.Equal(t, once, String(once), "input %q", in)
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Strings(nil))
	assert.Equal(t, []string{"shi", "tobe"}, Strings([]string{"shì", "To Be"}))
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hao", Value("Hǎo"))
	assert.Equal(t, []string{"a", "b"}, Value([]string{"Á", "b "}))
	assert.Equal(t, 42, Value(42))
	assert.Nil(t, Value(nil))
}
