package model

// Category classifies a menu item. The set is closed; the admin surface only
// offers these values.
type Category string

const (
	CategoryBurgers Category = "Burgers"
	CategoryWraps   Category = "Wraps"
	CategoryFries   Category = "Fries"
	CategoryShakes  Category = "Shakes"
	CategoryCombos  Category = "Combos"
)

// Categories lists every valid menu category.
func Categories() []Category {
	return []Category{CategoryBurgers, CategoryWraps, CategoryFries, CategoryShakes, CategoryCombos}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBurgers, CategoryWraps, CategoryFries, CategoryShakes, CategoryCombos:
		return true
	}
	return false
}

// MenuItem represents a single item on the café menu. Price is in whole
// rupees.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	IsAvailable bool     `json:"isAvailable"`
	IsPopular   bool     `json:"isPopular"`
}
