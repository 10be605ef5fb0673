package models

// Category classifies a product listing.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategoryHomeGoods   Category = "Home Goods"
	CategoryToys        Category = "Toys"
	CategoryOther       Category = "Other"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFurniture,
		CategoryClothing,
		CategoryBooks,
		CategoryHomeGoods,
		CategoryToys,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a second-hand listing. SellerID is a weak reference to
// User.ID: accounts are never deleted, so no cascading cleanup exists.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	SellerID    string   `json:"sellerId"`
}
