package core

import (
	"math/rand/v2"
	"strings"
)

// Catalog is a read-only list of foods.
type Catalog struct {
	foods []Food
}

// NewCatalog copies foods into a catalog.
func NewCatalog(foods []Food) *Catalog {
	return &Catalog{foods: append([]Food(nil), foods...)}
}

// DefaultCatalog returns the built-in food list.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinFoods)
}

// All returns a copy of every food in catalog order.
func (c *Catalog) All() []Food {
	return append([]Food(nil), c.foods...)
}

// Filter returns the foods matching typ and category. Empty values match
// everything.
func (c *Catalog) Filter(typ FoodType, category MealSlot) []Food {
	var out []Food
	for _, f := range c.foods {
		if typ != "" && f.Type != typ {
			continue
		}
		if category != "" && f.Category != category {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Lookup finds a food by name, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(name string) (Food, error) {
	name = strings.TrimSpace(name)
	for _, f := range c.foods {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return Food{}, ErrUnknownFood
}

// Suggest picks a random food of typ in the slot's category. ok is false when
// the catalog has nothing for that pair; the built-in list has no dinner
// snacks, for instance.
func (c *Catalog) Suggest(slot MealSlot, typ FoodType) (Food, bool) {
	candidates := c.Filter(typ, slot)
	if len(candidates) == 0 {
		return Food{}, false
	}
	return candidates[rand.IntN(len(candidates))], true
}

var builtinFoods = []Food{
	// Rice dishes
	{Name: "Chicken Basil Rice", Category: Lunch, Type: MainDish, Calories: 550, Nutrients: "Protein 30g | Carbs 60g"},
	{Name: "Pork Fried Rice", Category: Lunch, Type: MainDish, Calories: 600, Nutrients: "Protein 25g | Carbs 65g"},
	{Name: "Omelet with Rice", Category: Lunch, Type: MainDish, Calories: 500, Nutrients: "Protein 20g | Fat 25g"},
	{Name: "Pork Rice Soup", Category: Breakfast, Type: MainDish, Calories: 300, Nutrients: "Protein 25g | Easy to digest"},
	{Name: "Hainanese Chicken Rice", Category: Lunch, Type: MainDish, Calories: 650, Nutrients: "Protein 35g | Fat 25g"},
	{Name: "Red Pork with Rice", Category: Lunch, Type: MainDish, Calories: 620, Nutrients: "Protein 30g | Carbs 70g"},

	// Noodles and soups
	{Name: "Boat Noodles", Category: Lunch, Type: MainDish, Calories: 450, Nutrients: "Protein 25g"},
	{Name: "Tom Yum Noodles", Category: Lunch, Type: MainDish, Calories: 430, Nutrients: "Protein 22g"},
	{Name: "Egg Noodles with BBQ Pork", Category: Lunch, Type: MainDish, Calories: 480, Nutrients: "Protein 24g"},
	{Name: "Sukiyaki Soup", Category: Dinner, Type: MainDish, Calories: 350, Nutrients: "High vegetables | Low fat"},
	{Name: "Clear Soup with Tofu and Minced Pork", Category: Dinner, Type: MainDish, Calories: 180, Nutrients: "High protein | Low fat"},

	// Vegetables
	{Name: "Papaya Salad", Category: Lunch, Type: MainDish, Calories: 120, Nutrients: "Fiber | Vitamin C"},
	{Name: "Glass Noodle Salad", Category: Lunch, Type: MainDish, Calories: 250, Nutrients: "Protein | Low fat"},
	{Name: "Mixed Vegetable Soup", Category: Dinner, Type: MainDish, Calories: 150, Nutrients: "High fiber"},
	{Name: "Stir-Fried Mixed Vegetables", Category: Dinner, Type: MainDish, Calories: 220, Nutrients: "Vitamins | Minerals"},

	// Protein
	{Name: "Boiled Eggs (2)", Category: Breakfast, Type: MainDish, Calories: 140, Nutrients: "Protein 12g"},
	{Name: "Steamed Chicken Breast", Category: Dinner, Type: MainDish, Calories: 200, Nutrients: "High protein"},
	{Name: "Grilled Fish", Category: Dinner, Type: MainDish, Calories: 250, Nutrients: "Omega-3"},
	{Name: "Garlic Fried Pork", Category: Lunch, Type: MainDish, Calories: 480, Nutrients: "Protein | Fat"},

	// Snacks
	{Name: "Banana", Category: Snack, Type: SnackFood, Calories: 90, Nutrients: "Potassium"},
	{Name: "Apple", Category: Snack, Type: SnackFood, Calories: 80, Nutrients: "Fiber"},
	{Name: "Watermelon", Category: Snack, Type: SnackFood, Calories: 60, Nutrients: "High water content"},
	{Name: "Mandarin Orange", Category: Snack, Type: SnackFood, Calories: 70, Nutrients: "Vitamin C"},
	{Name: "Plain Yogurt", Category: Snack, Type: SnackFood, Calories: 120, Nutrients: "Probiotics"},

	// Drinks
	{Name: "Milk (1 glass)", Category: Breakfast, Type: SnackFood, Calories: 130, Nutrients: "Calcium"},
	{Name: "Black Coffee", Category: Breakfast, Type: SnackFood, Calories: 5, Nutrients: "No sugar"},
	{Name: "Unsweetened Green Tea", Category: Snack, Type: SnackFood, Calories: 10, Nutrients: "Antioxidants"},
}
