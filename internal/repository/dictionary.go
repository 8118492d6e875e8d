package repository

import (
	"context"

	"github.com/eslsoft/vocquiz/internal/entity"
)

// DictionaryRepository loads the full dictionary in source order.
type DictionaryRepository interface {
	Load(ctx context.Context) ([]entity.Record, error)
}

// DictionaryCache keeps the last successfully loaded dictionary of a source.
type DictionaryCache interface {
	Save(ctx context.Context, source string, records []entity.Record) error
	// Fetch returns ok=false when nothing is cached for source.
	Fetch(ctx context.Context, source string) (records []entity.Record, ok bool, err error)
}
