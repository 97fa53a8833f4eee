package dailylog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"dailyeat/internal/core"
	"dailyeat/internal/log"
)

// Backend reads and writes one string value per key. A missing key reads as
// the empty string.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store keeps the daily log blob in a Backend and guarantees one record per
// date on write.
type Store struct {
	backend Backend
	logger  *log.Logger

	mu     sync.Mutex
	onSave []func(core.LogRecord)
}

func NewStore(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Nop()
	}
	return &Store{
		backend: backend,
		logger:  logger.WithComponent(log.ComponentStore),
	}
}

// OnSave registers fn to run after every successful save.
func (s *Store) OnSave(fn func(core.LogRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSave = append(s.onSave, fn)
}

// Raw returns the stored blob as is.
func (s *Store) Raw(ctx context.Context) (string, error) {
	blob, err := s.backend.Get(ctx, StorageKey)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", StorageKey, err)
	}
	return blob, nil
}

// LoadAll returns every decodable record in append order.
func (s *Store) LoadAll(ctx context.Context) ([]core.LogRecord, error) {
	blob, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	records, dropped := Decode(blob)
	if dropped > 0 {
		s.logger.DebugContext(ctx, "Skipped undecodable log segments",
			log.FieldOperation, log.OpLoad,
			log.FieldDropped, dropped,
			log.FieldRecords, len(records))
	}
	return records, nil
}

// Save writes r, replacing any stored record with the same date. The whole
// read-modify-write runs under the store lock.
func (s *Store) Save(ctx context.Context, r core.LogRecord) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("save log record: %w", err)
	}

	s.mu.Lock()
	blob, err := s.Raw(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	next, replaced, err := save(blob, r)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode log record: %w", err)
	}
	if err := s.backend.Set(ctx, StorageKey, next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("write %s: %w", StorageKey, err)
	}
	observers := slices.Clone(s.onSave)
	s.mu.Unlock()

	fields := log.NewFields().
		WithOperation(log.OpSave).
		WithRecord(r.ID.String(), r.Date, len(r.Foods), r.TotalCalories)
	fields[log.FieldReplaced] = replaced
	fields[log.FieldBlobBytes] = len(next)
	s.logger.InfoContext(ctx, "Saved daily log", fields.ToSlice()...)

	for _, fn := range observers {
		fn(r)
	}
	return nil
}
