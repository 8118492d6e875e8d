package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/repository"
	"github.com/eslsoft/vocquiz/pkg/sampler"
)

// QuizUsecase drives question selection, answer verification and dictation
// over one in-memory session. It is not safe for concurrent use.
type QuizUsecase interface {
	Reload(ctx context.Context) error
	LoadDictionary(records []entity.Record) error
	BuildIndices() error
	SelectQuestion(mode entity.Mode) (*Question, error)
	VerifyAnswer(word, pronunciation, translation string) bool
	SelectDictationSet(n int) ([]string, error)
	Session() *Session
	Settings() entity.Settings
	ApplySetting(assignment string) error
}

type quizUsecase struct {
	repo     repository.DictionaryRepository
	settings entity.Settings
	logger   logrus.FieldLogger
	rng      *rand.Rand
	session  *Session
}

func NewQuizUsecase(repo repository.DictionaryRepository, settings entity.Settings, logger logrus.FieldLogger) QuizUsecase {
	return &quizUsecase{
		repo:     repo,
		settings: settings,
		logger:   logger,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Reload fetches the dictionary from the repository and rebuilds the session.
func (u *quizUsecase) Reload(ctx context.Context) error {
	records, err := u.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	if err := u.LoadDictionary(records); err != nil {
		return err
	}
	if err := u.BuildIndices(); err != nil {
		return err
	}
	u.log().WithFields(logrus.Fields{
		"records": len(records),
		"view":    len(u.session.view),
	}).Info("dictionary loaded")
	return nil
}

// LoadDictionary validates records and starts a new session over them.
// Indices are not built until BuildIndices is called.
func (u *quizUsecase) LoadDictionary(records []entity.Record) error {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	u.session = newSession(records)
	return nil
}

func (u *quizUsecase) BuildIndices() error {
	if u.session == nil {
		return entity.ErrDictionaryNotLoaded
	}
	if err := u.session.Rebuild(u.settings); err != nil {
		return fmt.Errorf("build indices: %w", err)
	}
	u.log().WithFields(logrus.Fields{
		"range":     u.settings.TestRange.String(),
		"view":      len(u.session.view),
		"retention": u.session.recent.Capacity(),
	}).Debug("indices built")
	return nil
}

// SelectQuestion draws the next record, avoiding the retention window, and
// makes a question of it. The drawn position enters the retention window.
func (u *quizUsecase) SelectQuestion(mode entity.Mode) (*Question, error) {
	s := u.session
	if s == nil || !s.Built() {
		return nil, entity.ErrDictionaryNotLoaded
	}

	category, fixed := mode.Category()
	if !fixed && mode != entity.ModeRandom {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidMode, mode)
	}

	smp := sampler.New(u.settings.Distribution, sampler.WithRand(u.rng))
	pos, err := smp.Select(len(s.view), s.recent)
	if err != nil {
		return nil, fmt.Errorf("select question: %w", err)
	}

	if !fixed {
		categories := entity.Categories()
		category = categories[u.rng.IntN(len(categories))]
	}
	values := s.view[pos].Field(category)
	prompt := values[u.rng.IntN(len(values))]

	q := newQuestion(category, prompt, pos, s.index)
	s.recent.Push(pos)
	s.question = q

	u.log().WithFields(logrus.Fields{
		"position": s.DictionaryPosition(pos),
		"category": category,
		"prompt":   prompt,
		"recent":   s.recent.Items(),
	}).Debug("question selected")
	return q, nil
}

// VerifyAnswer checks an answer against the current question. Without a
// current question every answer is wrong.
func (u *quizUsecase) VerifyAnswer(word, pronunciation, translation string) bool {
	if u.session == nil || u.session.question == nil {
		return false
	}
	ok := u.session.question.Verify(word, pronunciation, translation)
	u.log().WithField("correct", ok).Debug("answer verified")
	return ok
}

func (u *quizUsecase) Session() *Session { return u.session }

func (u *quizUsecase) Settings() entity.Settings { return u.settings }

// ApplySetting changes one setting and rebuilds the session. When the value is
// rejected, or the rebuilt view cannot be evaluated, nothing changes.
func (u *quizUsecase) ApplySetting(assignment string) error {
	next := u.settings
	if err := next.Set(assignment); err != nil {
		return err
	}
	if u.session != nil && u.session.Records() != nil {
		candidate := *u.session
		if err := candidate.Rebuild(next); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidSetting, err)
		}
		*u.session = candidate
	}
	u.settings = next
	u.log().WithField("setting", assignment).Info("setting applied")
	return nil
}

func (u *quizUsecase) log() logrus.FieldLogger {
	if u.session == nil {
		return u.logger
	}
	return u.logger.WithField("session", u.session.ID)
}
