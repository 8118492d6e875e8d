package entity

import "fmt"

// Record is one dictionary entry. Word[i] is read as Pronunciation[i];
// Translation applies to the whole record.
type Record struct {
	Word          []string `json:"word"`
	Pronunciation []string `json:"pronunciation"`
	Translation   []string `json:"translation"`
}

// Validate checks the alignment invariants of a record.
func (r Record) Validate() error {
	if len(r.Word) == 0 {
		return fmt.Errorf("%w: no word", ErrMisalignedRecord)
	}
	if len(r.Word) != len(r.Pronunciation) {
		return fmt.Errorf("%w: %d words for %d pronunciations", ErrMisalignedRecord, len(r.Word), len(r.Pronunciation))
	}
	if len(r.Translation) == 0 {
		return fmt.Errorf("%w: no translation", ErrMisalignedRecord)
	}
	return nil
}

// Field returns the values shown for a category.
func (r Record) Field(c Category) []string {
	switch c {
	case CategoryWord:
		return r.Word
	case CategoryPronunciation:
		return r.Pronunciation
	case CategoryTranslation:
		return r.Translation
	default:
		return nil
	}
}
