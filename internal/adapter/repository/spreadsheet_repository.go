package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
)

const (
	alternateSeparator = " / "
	rowFieldCount      = 3
	userAgent          = "vocquiz-cli"
)

// SpreadsheetRepository reads the dictionary from a published CSV export,
// either over HTTP(S) or from a local file.
type SpreadsheetRepository struct {
	source string
	client *http.Client
}

func NewSpreadsheetRepository(cfg *config.Config) *SpreadsheetRepository {
	timeout := cfg.Source.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SpreadsheetRepository{
		source: strings.TrimSpace(cfg.Source.URL),
		client: &http.Client{Timeout: timeout},
	}
}

// Source returns the URL or path the dictionary is read from.
func (r *SpreadsheetRepository) Source() string { return r.source }

func (r *SpreadsheetRepository) Load(ctx context.Context) ([]entity.Record, error) {
	if r.source == "" {
		return nil, errors.New("dictionary source is not configured")
	}
	body, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return DecodeRecords(body)
}

func (r *SpreadsheetRepository) open(ctx context.Context) (io.ReadCloser, error) {
	if !isRemote(r.source) {
		f, err := os.Open(filepath.Clean(strings.TrimPrefix(r.source, "file://")))
		if err != nil {
			return nil, fmt.Errorf("open dictionary file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.source, nil)
	if err != nil {
		return nil, fmt.Errorf("build dictionary request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch dictionary: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// DecodeRecords parses CSV rows of word, pronunciation and translation, each a
// " / "-separated list of alternates. Any row without exactly three fields is
// rejected with ErrMalformedRow.
func DecodeRecords(r io.Reader) ([]entity.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records []entity.Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		if len(fields) != rowFieldCount {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", entity.ErrMalformedRow, line, len(fields), rowFieldCount)
		}

		rec := entity.Record{
			Word:          splitAlternates(fields[0]),
			Pronunciation: splitAlternates(fields[1]),
			Translation:   splitAlternates(fields[2]),
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func splitAlternates(field string) []string {
	parts := strings.Split(field, alternateSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func joinAlternates(values []string) string {
	return strings.Join(values, alternateSeparator)
}
