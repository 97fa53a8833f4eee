// Package tracker holds the day currently being edited and turns it into a
// stored record on save.
package tracker

import (
	"sync"

	"dailyeat/internal/core"
)

// Accumulator sums calories per meal slot for the day being edited. It is
// never persisted.
type Accumulator struct {
	mu     sync.Mutex
	totals map[core.MealSlot]int
	foods  []string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{totals: make(map[core.MealSlot]int, len(core.MealSlots))}
}

// AddFood adds food's calories to slot and appends its name to the eaten list.
func (a *Accumulator) AddFood(slot core.MealSlot, food core.Food) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if food.Calories < 0 {
		return core.ErrNegativeCalories
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.totals[slot] += food.Calories
	a.foods = append(a.foods, food.Name)
	return nil
}

// Reset zeroes every slot and clears the eaten list.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.totals)
	a.foods = nil
}

// SlotCalories returns the running total of one slot.
func (a *Accumulator) SlotCalories(slot core.MealSlot) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totals[slot]
}

// Total is the sum of the four slot totals.
func (a *Accumulator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total()
}

func (a *Accumulator) total() int {
	sum := 0
	for _, slot := range core.MealSlots {
		sum += a.totals[slot]
	}
	return sum
}

// Remaining is target minus Total, never below zero.
func (a *Accumulator) Remaining(target int) int {
	return max(target-a.Total(), 0)
}

// Foods returns a copy of the eaten list in the order foods were added.
func (a *Accumulator) Foods() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.foods...)
}

// SlotTotal is one line of a Snapshot.
type SlotTotal struct {
	Slot     core.MealSlot `json:"slot"`
	Calories int           `json:"calories"`
}

// Snapshot is a consistent copy of the accumulator.
type Snapshot struct {
	Slots []SlotTotal `json:"slots"`
	Foods []string    `json:"foods"`
	Total int         `json:"total"`
}

func (a *Accumulator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := Snapshot{
		Slots: make([]SlotTotal, 0, len(core.MealSlots)),
		Foods: append([]string{}, a.foods...),
		Total: a.total(),
	}
	for _, slot := range core.MealSlots {
		s.Slots = append(s.Slots, SlotTotal{Slot: slot, Calories: a.totals[slot]})
	}
	return s
}
