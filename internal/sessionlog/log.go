// Package sessionlog keeps the newest-first history of completed focus
// sessions and mirrors it into a storage.Store after every change.
package sessionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"focus_timer/internal/storage"
)

// DefaultKey is the store key holding the serialized log.
const DefaultKey = "focusSessions"

// Log is the in-memory session history plus its storage binding.
type Log struct {
	store   storage.Store
	key     string
	logger  *slog.Logger
	records []Record
}

func New(store storage.Store, key string, logger *slog.Logger) *Log {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		store:   store,
		key:     key,
		logger:  logger,
		records: []Record{},
	}
}

// Load replaces the in-memory history with the stored one. Missing or
// malformed data leaves an empty history; nothing is written back.
func (l *Log) Load(ctx context.Context) {
	l.records = []Record{}

	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.logger.Warn("Reading session log failed, starting empty", "key", l.key, "error", err)
		return
	}
	if !ok {
		l.logger.Debug("No stored session log", "key", l.key)
		return
	}

	records, err := decode(raw)
	if err != nil {
		l.logger.Warn("Stored session log is unreadable, starting empty", "key", l.key, "error", err)
		return
	}
	l.records = records
	l.logger.Debug("Loaded session log", "key", l.key, "sessions", len(records))
}

// Append puts r at the head of the history and persists the result. The
// record stays in memory even when persisting fails.
func (l *Log) Append(ctx context.Context, r Record) error {
	l.records = append([]Record{r}, l.records...)
	return l.Persist(ctx)
}

// Persist overwrites the stored value with the full history.
func (l *Log) Persist(ctx context.Context) error {
	data, err := json.Marshal(l.records)
	if err != nil {
		return fmt.Errorf("encoding session log: %w", err)
	}
	if err := l.store.Set(ctx, l.key, string(data)); err != nil {
		return fmt.Errorf("saving session log: %w", err)
	}
	return nil
}

// Records returns a copy of the history, newest first.
func (l *Log) Records() []Record {
	return slices.Clone(l.records)
}

func (l *Log) Len() int {
	return len(l.records)
}

type storedRecord struct {
	Duration  *string `json:"duration"`
	Timestamp *string `json:"timestamp"`
}

var errBadRecord = errors.New("record is missing duration or timestamp")

func decode(raw string) ([]Record, error) {
	var stored []*storedRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(stored))
	for i, s := range stored {
		if s == nil || s.Duration == nil || s.Timestamp == nil {
			return nil, fmt.Errorf("entry %d: %w", i, errBadRecord)
		}
		records = append(records, Record{Duration: *s.Duration, Timestamp: *s.Timestamp})
	}
	return records, nil
}
