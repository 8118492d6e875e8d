package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/vocquiz/internal/entity"
)

type fakeDictionaryRepo struct {
	records []entity.Record
	err     error
	calls   int
}

func (f *fakeDictionaryRepo) Load(context.Context) ([]entity.Record, error) {
	f.calls++
	return f.records, f.err
}

func rec(words, prons, trans []string) entity.Record {
	return entity.Record{Word: words, Pronunciation: prons, Translation: trans}
}

func sampleRecords() []entity.Record {
	return []entity.Record{
		rec([]string{"你好"}, []string{"nǐ hǎo"}, []string{"hello", "hi"}),
		rec([]string{"是"}, []string{"shì"}, []string{"to be"}),
		rec([]string{"十"}, []string{"shí"}, []string{"ten"}),
		rec([]string{"事"}, []string{"shì"}, []string{"matter", "thing"}),
		rec([]string{"妈妈", "妈"}, []string{"māma", "mā"}, []string{"mother"}),
	}
}

// numberedRecords returns n records whose words are distinct two-character strings.
func numberedRecords(n int) []entity.Record {
	out := make([]entity.Record, n)
	for i := range out {
		out[i] = rec(
			[]string{fmt.Sprintf("w%02d", i)},
			[]string{fmt.Sprintf("p%02d", i)},
			[]string{fmt.Sprintf("t%02d", i)},
		)
	}
	return out
}

func newTestUsecase(t *testing.T, records []entity.Record) *quizUsecase {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	uc := NewQuizUsecase(&fakeDictionaryRepo{records: records}, entity.DefaultSettings(), logger).(*quizUsecase)
	uc.rng = rand.New(rand.NewPCG(42, 1024))
	require.NoError(t, uc.Reload(context.Background()))
	return uc
}
