package usecase

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/pkg/filterexpr"
)

// Session is the state of one quiz run: the loaded dictionary, the active view
// and everything derived from it. Rebuild replaces the derived state wholesale.
type Session struct {
	ID string

	records   []entity.Record
	view      []entity.Record
	positions []int
	index     *Index
	recent    *Retention
	question  *Question
}

func newSession(records []entity.Record) *Session {
	return &Session{
		ID:      uuid.NewString(),
		records: slices.Clone(records),
	}
}

// Rebuild narrows the dictionary to the configured range and filter and
// rebuilds the indices and the retention window for that view.
func (s *Session) Rebuild(settings entity.Settings) error {
	start, end := settings.TestRange.Bounds(len(s.records))

	var filter *filterexpr.RecordFilter
	if settings.Filter != "" {
		f, err := filterexpr.CompileRecordFilter(settings.Filter)
		if err != nil {
			return err
		}
		filter = f
	}

	view := make([]entity.Record, 0, end-start)
	positions := make([]int, 0, end-start)
	for pos := start; pos < end; pos++ {
		rec := s.records[pos]
		if filter != nil {
			ok, err := filter.Match(rec.Word, rec.Pronunciation, rec.Translation, pos)
			if err != nil {
				return fmt.Errorf("record %d: %w", pos, err)
			}
			if !ok {
				continue
			}
		}
		view = append(view, rec)
		positions = append(positions, pos)
	}

	s.view = view
	s.positions = positions
	s.index = BuildIndex(view)
	s.recent = NewRetention(retentionCapacity(settings.Retention, len(view)))
	return nil
}

// retentionCapacity keeps at least one record drawable.
func retentionCapacity(retention, viewSize int) int {
	return max(min(retention, viewSize-1), 0)
}

// View returns the records currently quizzed.
func (s *Session) View() []entity.Record { return s.view }

// DictionaryPosition maps a view position back to the full dictionary.
func (s *Session) DictionaryPosition(viewPosition int) int {
	if viewPosition < 0 || viewPosition >= len(s.positions) {
		return -1
	}
	return s.positions[viewPosition]
}

func (s *Session) Index() *Index            { return s.index }
func (s *Session) Recent() *Retention       { return s.recent }
func (s *Session) Question() *Question      { return s.question }
func (s *Session) Built() bool              { return s.index != nil }
func (s *Session) Records() []entity.Record { return s.records }
