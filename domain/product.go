package domain

// Category is the closed set of shelves the storefront knows about.
// CategoryAll is a filter sentinel only and never appears on a stored product.
type Category string

const (
	CategoryAll       Category = "All"
	CategoryClothing  Category = "Хувцас"
	CategoryHousehold Category = "Гэр ахуй"
	CategoryFood      Category = "Хүнс"
	CategoryElectro   Category = "Электроник"
)

// Categories lists the storable categories in display order.
var Categories = []Category{CategoryClothing, CategoryHousehold, CategoryFood, CategoryElectro}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is immutable once created; replacing one goes through
// an explicit delete followed by an add on the catalog.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // in ₮, smallest unit
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}
