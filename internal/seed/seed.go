// Package seed provides the built-in default dataset used when the local
// database is empty or unreadable.
package seed

import "github.com/ecofinds/ecofinds-go/internal/models"

// Users returns the default registered users. The demo credentials are
// intentionally plain; there is no security story in this app.
func Users() []models.User {
	return []models.User{
		{ID: "user-1", Email: "eco@finds.com", Username: "EcoUser", Password: "password123"},
		{ID: "user-2", Email: "green@finds.com", Username: "GreenSeller", Password: "password123"},
	}
}

// Products returns the default catalog shown on first run.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "prod-1",
			Title:       "Vintage Camera",
			Description: "A classic film camera in working condition. Light wear on the body.",
			Price:       4500,
			Category:    models.CategoryElectronics,
			ImageURL:    "https://picsum.photos/seed/camera/600/400",
			SellerID:    "user-2",
		},
		{
			ID:          "prod-2",
			Title:       "Teak Coffee Table",
			Description: "Mid-century teak table, minor scratches on one leg.",
			Price:       6000,
			Category:    models.CategoryFurniture,
			ImageURL:    "https://picsum.photos/seed/table/600/400",
			SellerID:    "user-2",
		},
		{
			ID:          "prod-3",
			Title:       "Denim Jacket",
			Description: "Barely worn denim jacket, size M.",
			Price:       900,
			Category:    models.CategoryClothing,
			ImageURL:    "https://picsum.photos/seed/jacket/600/400",
			SellerID:    "user-1",
		},
		{
			ID:          "prod-4",
			Title:       "The Pragmatic Programmer",
			Description: "Paperback, good condition, no markings inside.",
			Price:       350,
			Category:    models.CategoryBooks,
			ImageURL:    "https://picsum.photos/seed/book/600/400",
			SellerID:    "user-1",
		},
		{
			ID:          "prod-5",
			Title:       "Ceramic Plant Pots (set of 3)",
			Description: "Hand-glazed pots, drainage holes included.",
			Price:       650,
			Category:    models.CategoryHomeGoods,
			ImageURL:    "https://picsum.photos/seed/pots/600/400",
			SellerID:    "user-2",
		},
		{
			ID:          "prod-6",
			Title:       "Wooden Train Set",
			Description: "Complete set, all tracks and carriages present.",
			Price:       800,
			Category:    models.CategoryToys,
			ImageURL:    "https://picsum.photos/seed/train/600/400",
			SellerID:    "user-1",
		},
	}
}
