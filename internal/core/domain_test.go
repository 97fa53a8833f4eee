package core

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseMealSlot(t *testing.T) {
	cases := []struct {
		in   string
		want MealSlot
		ok   bool
	}{
		{"Breakfast", Breakfast, true},
		{"lunch", Lunch, true},
		{" DINNER ", Dinner, true},
		{"Snack", Snack, true},
		{"brunch", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseMealSlot(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.want, got, err)
			}
		} else if !errors.Is(err, ErrInvalidSlot) {
			t.Fatalf("%q expected ErrInvalidSlot, got %v", tc.in, err)
		}
	}
}

func TestParseFoodType(t *testing.T) {
	for in, want := range map[string]FoodType{"main": MainDish, "Main Dish": MainDish, "SNACK": SnackFood} {
		got, err := ParseFoodType(in)
		if err != nil || got != want {
			t.Fatalf("%q expected %q, got %q (err=%v)", in, want, got, err)
		}
	}
	if _, err := ParseFoodType("dessert"); !errors.Is(err, ErrInvalidFoodType) {
		t.Fatalf("expected ErrInvalidFoodType, got %v", err)
	}
}

func TestFoodValidate(t *testing.T) {
	good := Food{Name: "Apple", Category: Snack, Type: SnackFood, Calories: 80}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Food{
		{Name: " ", Category: Snack, Type: SnackFood, Calories: 80},
		{Name: "Apple", Category: "Supper", Type: SnackFood, Calories: 80},
		{Name: "Apple", Category: Snack, Type: "Drink", Calories: 80},
		{Name: "Apple", Category: Snack, Type: SnackFood, Calories: 0},
	}
	for i, f := range bads {
		if err := f.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestNewLogRecordCopiesFoods(t *testing.T) {
	foods := []string{"Banana", "Apple"}
	r := NewLogRecord("07/02/2026", foods, 170)
	foods[0] = "Changed"

	if r.Foods[0] != "Banana" {
		t.Fatalf("record shares the caller's slice: %v", r.Foods)
	}
	if r.ID == uuid.Nil {
		t.Fatalf("expected an id")
	}
	if other := NewLogRecord("07/02/2026", nil, 0); other.ID == r.ID {
		t.Fatalf("ids must not be reused")
	}
	if r.Foods == nil || NewLogRecord("07/02/2026", nil, 0).Foods == nil {
		t.Fatalf("foods should be an empty slice, not nil")
	}
}

func TestLogRecordValidate(t *testing.T) {
	good := NewLogRecord("29/02/2024", []string{"Apple"}, 80)
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		r    LogRecord
		want error
	}{
		{LogRecord{Date: "29/02/2024"}, ErrMissingID},
		{LogRecord{ID: uuid.New(), Date: "29/02/2023"}, ErrInvalidDate},
		{LogRecord{ID: uuid.New(), Date: "2024-02-01"}, ErrInvalidDate},
		{LogRecord{ID: uuid.New(), Date: "01/02/2024", TotalCalories: -1}, ErrNegativeCalories},
		{LogRecord{ID: uuid.New(), Date: "01/02/2024", Foods: []string{"Apple", "bad\xff"}}, ErrInvalidUTF8},
	}
	for i, tc := range cases {
		if err := tc.r.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestFoodTypeLabel(t *testing.T) {
	if got := MainDish.Label(); got != "Main Dish" {
		t.Fatalf("MainDish.Label() = %q", got)
	}
	if got := SnackFood.Label(); got != "Snack" {
		t.Fatalf("SnackFood.Label() = %q", got)
	}
}

func TestValidateTarget(t *testing.T) {
	if err := ValidateTarget(1); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := ValidateTarget(5000); err != nil {
		t.Fatalf("targets outside the stepper range are still valid, got %v", err)
	}
	if err := ValidateTarget(0); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}
