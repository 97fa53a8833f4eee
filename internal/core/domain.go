// Package core provides the domain model of the food tracker: meal slots,
// catalog foods, daily log records and the month and date-key value types.
package core

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Dinner    MealSlot = "Dinner"
	Snack     MealSlot = "Snack"
)

const (
	MainDish  FoodType = "Main"
	SnackFood FoodType = "Snack"
)

type (
	// MealSlot is one of the four meals of a day. It doubles as the food
	// category in the catalog.
	MealSlot string

	FoodType string

	Food struct {
		Name      string   `json:"name"`
		Category  MealSlot `json:"category"`
		Type      FoodType `json:"type"`
		Calories  int      `json:"calories"`
		Nutrients string   `json:"nutrients"`
	}

	// LogRecord is the persisted summary of one day.
	LogRecord struct {
		ID            uuid.UUID `json:"id"`
		Date          string    `json:"date"` // dd/MM/yyyy
		Foods         []string  `json:"foods"`
		TotalCalories int       `json:"totalCalories"`
	}
)

var (
	ErrInvalidSlot      = errors.New("invalid meal slot")
	ErrInvalidFoodType  = errors.New("invalid food type")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidTarget    = errors.New("invalid calorie target")
	ErrNegativeCalories = errors.New("negative calories")
	ErrInvalidCalories  = errors.New("calories must be positive")
	ErrEmptyName        = errors.New("empty food name")
	ErrUnknownFood      = errors.New("unknown food")
	ErrMissingID        = errors.New("missing record id")
	ErrInvalidUTF8      = errors.New("food name is not valid UTF-8")
)

// MealSlots lists the slots in display order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snack}

// ParseMealSlot accepts the exact slot name, case-insensitively.
func ParseMealSlot(s string) (MealSlot, error) {
	s = strings.TrimSpace(s)
	for _, slot := range MealSlots {
		if strings.EqualFold(s, string(slot)) {
			return slot, nil
		}
	}
	return "", ErrInvalidSlot
}

func (s MealSlot) Validate() error {
	switch s {
	case Breakfast, Lunch, Dinner, Snack:
		return nil
	default:
		return ErrInvalidSlot
	}
}

func (s MealSlot) String() string {
	return string(s)
}

// ParseFoodType accepts "Main" or "Snack", case-insensitively. "main dish" is
// accepted as an alias of Main.
func ParseFoodType(s string) (FoodType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "main dish":
		return MainDish, nil
	case "snack":
		return SnackFood, nil
	default:
		return "", ErrInvalidFoodType
	}
}

func (t FoodType) Validate() error {
	switch t {
	case MainDish, SnackFood:
		return nil
	default:
		return ErrInvalidFoodType
	}
}

// Label returns the display label used by the picker.
func (t FoodType) Label() string {
	if t == MainDish {
		return "Main Dish"
	}
	return string(t)
}

func (f Food) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}
	if err := f.Category.Validate(); err != nil {
		return err
	}
	if err := f.Type.Validate(); err != nil {
		return err
	}
	if f.Calories <= 0 {
		return ErrInvalidCalories
	}
	return nil
}

// NewLogRecord builds a record with a fresh identifier. The foods slice is
// copied so later edits by the caller do not leak into the record.
func NewLogRecord(date string, foods []string, totalCalories int) LogRecord {
	return LogRecord{
		ID:            uuid.New(),
		Date:          date,
		Foods:         append([]string{}, foods...),
		TotalCalories: totalCalories,
	}
}

func (r LogRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrMissingID
	}
	if _, err := ParseDateKey(r.Date); err != nil {
		return err
	}
	if r.TotalCalories < 0 {
		return ErrNegativeCalories
	}
	// JSON encoding would replace invalid bytes with U+FFFD.
	for _, f := range r.Foods {
		if !utf8.ValidString(f) {
			return ErrInvalidUTF8
		}
	}
	return nil
}

// HitTarget reports whether the day reached the calorie target.
func (r LogRecord) HitTarget(target int) bool {
	return r.TotalCalories >= target
}

// ValidateTarget accepts any positive calorie target.
func ValidateTarget(target int) error {
	if target <= 0 {
		return ErrInvalidTarget
	}
	return nil
}
