package entity

import "errors"

// Dictionary load errors. Both abort startup.
var (
	ErrMalformedRow     = errors.New("malformed dictionary row")
	ErrMisalignedRecord = errors.New("misaligned dictionary record")
)

// Session errors.
var (
	ErrDictionaryNotLoaded  = errors.New("dictionary not loaded")
	ErrInvalidSetting       = errors.New("invalid setting")
	ErrInvalidMode          = errors.New("invalid quiz mode")
	ErrInvalidDictationSize = errors.New("invalid dictation size")
)
