package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/repository"
)

type sqliteCache struct {
	db    *sql.DB
	clock func() time.Time
}

// NewSQLiteCache stores dictionaries in the dictionary_rows table. A nil db
// disables caching.
func NewSQLiteCache(db *sql.DB) repository.DictionaryCache {
	if db == nil {
		return nil
	}
	return &sqliteCache{db: db, clock: time.Now}
}

func (c *sqliteCache) Save(ctx context.Context, source string, records []entity.Record) (err error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM dictionary_rows WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clear cached rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dictionary_rows(source, position, word, pronunciation, translation, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	fetchedAt := c.clock().UTC()
	for i, rec := range records {
		if _, err = stmt.ExecContext(ctx, source, i,
			joinAlternates(rec.Word),
			joinAlternates(rec.Pronunciation),
			joinAlternates(rec.Translation),
			fetchedAt,
		); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (c *sqliteCache) Fetch(ctx context.Context, source string) ([]entity.Record, bool, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT word, pronunciation, translation FROM dictionary_rows WHERE source = ? ORDER BY position`, source)
	if err != nil {
		return nil, false, fmt.Errorf("query cached rows: %w", err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var word, pronunciation, translation string
		if err := rows.Scan(&word, &pronunciation, &translation); err != nil {
			return nil, false, fmt.Errorf("scan cached row: %w", err)
		}
		records = append(records, entity.Record{
			Word:          splitAlternates(word),
			Pronunciation: splitAlternates(pronunciation),
			Translation:   splitAlternates(translation),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return records, len(records) > 0, nil
}
