package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dailyeat/internal/calendar"
	"dailyeat/internal/core"
	"dailyeat/internal/log"
)

// ErrNoSuggestion is returned when the catalog has no food for a slot and type.
var ErrNoSuggestion = errors.New("no food matches slot and type")

// Saver persists a day record.
type Saver interface {
	Save(ctx context.Context, r core.LogRecord) error
}

// Tracker is the editing session for today: one accumulator, the calorie
// target and the store it saves into.
type Tracker struct {
	catalog *core.Catalog
	store   Saver
	acc     *Accumulator
	now     func() time.Time
	logger  *log.Logger

	mu     sync.RWMutex
	target int

	// edit serializes accumulator changes with SaveToday.
	edit sync.Mutex
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now. Tests use it to pin today.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

func New(catalog *core.Catalog, store Saver, target int, opts ...Option) (*Tracker, error) {
	if err := core.ValidateTarget(target); err != nil {
		return nil, err
	}
	t := &Tracker{
		catalog: catalog,
		store:   store,
		acc:     NewAccumulator(),
		now:     time.Now,
		logger:  log.Nop(),
		target:  target,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithComponent(log.ComponentTracker)
	return t, nil
}

// Status is what a front end shows for today.
type Status struct {
	Date      string         `json:"date"`
	Target    int            `json:"target"`
	Remaining int            `json:"remaining"`
	Level     calendar.Level `json:"level"`
	Snapshot
}

func (t *Tracker) Target() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.target
}

// SetTarget changes the target. Any positive value is accepted.
func (t *Tracker) SetTarget(target int) error {
	if err := core.ValidateTarget(target); err != nil {
		return err
	}
	t.mu.Lock()
	t.target = target
	t.mu.Unlock()
	return nil
}

// StepTarget moves the target by steps of 100 within the stepper range.
func (t *Tracker) StepTarget(steps int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.target = calendar.StepTarget(t.target, steps)
	return t.target
}

// Today returns today's date key.
func (t *Tracker) Today() string {
	return core.FormatDateKey(t.now())
}

func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) Catalog() *core.Catalog {
	return t.catalog
}

// AddFood looks name up in the catalog and adds it to slot. Any food may go in
// any slot.
func (t *Tracker) AddFood(ctx context.Context, slot core.MealSlot, name string) (core.Food, error) {
	if err := slot.Validate(); err != nil {
		return core.Food{}, err
	}
	food, err := t.catalog.Lookup(name)
	if err != nil {
		return core.Food{}, fmt.Errorf("%w: %q", err, name)
	}
	t.edit.Lock()
	err = t.acc.AddFood(slot, food)
	t.edit.Unlock()
	if err != nil {
		return core.Food{}, err
	}
	t.logger.DebugContext(ctx, "Food added",
		log.FieldOperation, log.OpAddFood,
		log.FieldSlot, slot,
		log.FieldFood, food.Name,
		log.FieldCalories, t.acc.Total())
	return food, nil
}

// Suggest picks a random catalog food of typ whose category is slot.
func (t *Tracker) Suggest(slot core.MealSlot, typ core.FoodType) (core.Food, error) {
	if err := slot.Validate(); err != nil {
		return core.Food{}, err
	}
	if err := typ.Validate(); err != nil {
		return core.Food{}, err
	}
	food, ok := t.catalog.Suggest(slot, typ)
	if !ok {
		return core.Food{}, ErrNoSuggestion
	}
	return food, nil
}

// Reset discards today's unsaved entries.
func (t *Tracker) Reset(ctx context.Context) {
	t.edit.Lock()
	t.acc.Reset()
	t.edit.Unlock()
	t.logger.DebugContext(ctx, "Accumulator reset", log.FieldOperation, log.OpReset)
}

func (t *Tracker) Status() Status {
	target := t.Target()
	snap := t.acc.Snapshot()
	remaining := calendar.Remaining(snap.Total, target)
	return Status{
		Date:      t.Today(),
		Target:    target,
		Remaining: remaining,
		Level:     calendar.RemainingLevel(remaining),
		Snapshot:  snap,
	}
}

// SaveToday stores today's foods and total as the record for today, replacing
// any earlier save of the same day, then resets the accumulator. The
// accumulator is left untouched when the save fails.
func (t *Tracker) SaveToday(ctx context.Context) (core.LogRecord, error) {
	t.edit.Lock()
	defer t.edit.Unlock()

	snap := t.acc.Snapshot()
	rec := core.NewLogRecord(t.Today(), snap.Foods, snap.Total)
	if err := t.store.Save(ctx, rec); err != nil {
		t.logger.ErrorContext(ctx, "Failed to save today",
			log.FieldOperation, log.OpSave,
			log.FieldDate, rec.Date,
			log.FieldError, err)
		return core.LogRecord{}, err
	}
	t.acc.Reset()
	return rec, nil
}
