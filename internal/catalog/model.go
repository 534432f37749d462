package catalog

import "time"

// Category is the fixed set of dish categories a tiffin kitchen works with.
type Category string

const (
	CategoryRotiBread   Category = "roti_bread"
	CategorySabzi       Category = "sabzi"
	CategoryDal         Category = "dal"
	CategoryRiceItem    Category = "rice_item"
	CategoryNonVeg      Category = "non_veg"
	CategoryPicklePapad Category = "pickle_papad"
	CategorySweet       Category = "sweet"
	CategoryDrink       Category = "drink"
	CategoryRaitaSalad  Category = "raita_salad"
)

var categoryLabels = map[Category]string{
	CategoryRotiBread:   "Roti/Bread",
	CategorySabzi:       "Sabzi",
	CategoryDal:         "Dal",
	CategoryRiceItem:    "Rice Items",
	CategoryNonVeg:      "Non-Veg",
	CategoryPicklePapad: "Pickle/Papad",
	CategorySweet:       "Sweet",
	CategoryDrink:       "Drink",
	CategoryRaitaSalad:  "Raita/Salad",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Display() string {
	return categoryLabels[c]
}

// ImpliesNonVeg reports whether the category forces the item to be non-vegetarian.
func (c Category) ImpliesNonVeg() bool {
	return c == CategoryNonVeg
}

// FoodItem is one dish on a vendor's master list. Items are never deleted
// once created so historical menus stay resolvable; availability is toggled
// with is_available_today instead.
type FoodItem struct {
	ID               int       `json:"id"`
	VendorID         int       `json:"vendor_id"`
	Name             string    `json:"name"`
	Category         Category  `json:"category"`
	CategoryDisplay  string    `json:"category_display"`
	Price            float64   `json:"price"`
	IsVegetarian     bool      `json:"is_vegetarian"`
	IsSpicy          bool      `json:"is_spicy"`
	IsAvailableToday bool      `json:"is_available_today"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
