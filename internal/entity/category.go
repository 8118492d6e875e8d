package entity

import (
	"fmt"
	"strings"
)

// Category is the field shown to the learner as the question prompt.
type Category string

const (
	CategoryWord          Category = "word"
	CategoryPronunciation Category = "pronunciation"
	CategoryTranslation   Category = "translation"
)

// Categories lists the quiz categories in menu order.
func Categories() []Category {
	return []Category{CategoryWord, CategoryPronunciation, CategoryTranslation}
}

// Mode is either ModeRandom or a fixed Category.
type Mode string

const ModeRandom Mode = "random"

// Modes lists the quiz modes in menu order.
func Modes() []Mode {
	return []Mode{ModeRandom, Mode(CategoryWord), Mode(CategoryPronunciation), Mode(CategoryTranslation)}
}

// Category returns the fixed category of m, or false for ModeRandom.
func (m Mode) Category() (Category, bool) {
	switch c := Category(m); c {
	case CategoryWord, CategoryPronunciation, CategoryTranslation:
		return c, true
	default:
		return "", false
	}
}

// ParseMode accepts a mode name or its 1-based menu index.
func ParseMode(value string) (Mode, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	modes := Modes()
	for i, m := range modes {
		if value == string(m) || value == fmt.Sprint(i+1) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, value)
}
