// Package history serves month and day views over the stored daily log.
package history

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"dailyeat/internal/cache"
	"dailyeat/internal/calendar"
	"dailyeat/internal/core"
	"dailyeat/internal/log"
)

// Loader returns every stored record in append order.
type Loader interface {
	LoadAll(ctx context.Context) ([]core.LogRecord, error)
}

// MonthView is a laid-out month with its statistics.
type MonthView struct {
	Grid    calendar.Grid     `json:"grid"`
	Summary core.MonthSummary `json:"summary"`
}

// DayView is the detail of one date.
type DayView struct {
	Date   string          `json:"date"`
	Record *core.LogRecord `json:"record,omitempty"`
	Status calendar.Status `json:"status"`
	Target int             `json:"target"`
}

// Service builds month views and caches them until the next save.
type Service struct {
	loader Loader
	views  *cache.LRUCache[MonthView]
	group  singleflight.Group
	now    func() time.Time
	logger *log.Logger

	// generation is bumped on every invalidation; loads that started under an
	// older generation are not cached.
	generation atomic.Uint64
}

type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	Now       func() time.Time
	Logger    *log.Logger
}

func NewService(loader Loader, cfg Config) *Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 24
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Nop()
	}
	return &Service{
		loader: loader,
		views:  cache.NewLRUCache[MonthView](cfg.CacheSize, cfg.CacheTTL),
		now:    cfg.Now,
		logger: cfg.Logger.WithComponent(log.ComponentCalendar),
	}
}

// Cache exposes the view cache so a cache.Manager can sweep it.
func (s *Service) Cache() *cache.LRUCache[MonthView] {
	return s.views
}

// Invalidate drops every cached view. It is registered as a store save hook.
func (s *Service) Invalidate(core.LogRecord) {
	s.generation.Add(1)
	s.views.Purge()
}

// Month returns the view of m for the given target. Concurrent requests for
// the same view share one load.
func (s *Service) Month(ctx context.Context, m core.Month, target int) (MonthView, error) {
	if err := m.Validate(); err != nil {
		return MonthView{}, err
	}
	if err := core.ValidateTarget(target); err != nil {
		return MonthView{}, err
	}

	now := s.now()
	// Today is part of the key so that views roll over at midnight.
	key := fmt.Sprintf("%s|%d|%s", m, target, core.FormatDateKey(now))
	if v, ok := s.views.Get(key); ok {
		s.logger.DebugContext(ctx, "Month view served from cache",
			log.FieldOperation, log.OpMonth,
			log.FieldMonth, m.String(),
			log.FieldCacheHit, true)
		return v, nil
	}

	res, err, _ := s.group.Do(key, func() (any, error) {
		gen := s.generation.Load()
		records, err := s.loader.LoadAll(ctx)
		if err != nil {
			return MonthView{}, fmt.Errorf("load records: %w", err)
		}
		v := MonthView{
			Grid:    calendar.BuildGrid(m, records, target, now),
			Summary: calendar.Summarize(records, m, target),
		}
		if s.generation.Load() == gen {
			s.views.Set(key, v)
		}
		return v, nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build month view",
			log.FieldOperation, log.OpMonth,
			log.FieldMonth, m.String(),
			log.FieldError, err)
		return MonthView{}, err
	}
	v := res.(MonthView)
	s.logger.DebugContext(ctx, "Month view built",
		log.FieldOperation, log.OpMonth,
		log.FieldMonth, m.String(),
		log.FieldRecords, v.Summary.LoggedDays,
		log.FieldCacheHit, false)
	return v, nil
}

// Day returns the record stored for dateKey, if any.
func (s *Service) Day(ctx context.Context, dateKey string, target int) (DayView, error) {
	if _, err := core.ParseDateKey(dateKey); err != nil {
		return DayView{}, fmt.Errorf("%w: %q", err, dateKey)
	}
	if err := core.ValidateTarget(target); err != nil {
		return DayView{}, err
	}
	records, err := s.loader.LoadAll(ctx)
	if err != nil {
		return DayView{}, fmt.Errorf("load records: %w", err)
	}
	v := DayView{Date: dateKey, Status: calendar.StatusNone, Target: target}
	if rec, ok := calendar.RecordFor(records, dateKey); ok {
		v.Record = &rec
		v.Status = calendar.StatusFor(rec, target)
	}
	return v, nil
}
