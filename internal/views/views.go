// Package views computes read-only projections of catalog state: the
// filtered/sorted listing grid and the purchase-history views. Everything
// here is pure - inputs are copied, never mutated, and nothing is stored.
package views

import (
	"sort"
	"strings"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// CategoryAll is the category filter value that matches every product.
const CategoryAll = "all"

// UnknownSeller is shown when a snapshot references a seller id that is not
// in the user table (seed data inconsistency, for example).
const UnknownSeller = "Unknown Seller"

// Query describes a catalog listing request.
type Query struct {
	// Term is matched case-insensitively against title and description.
	Term string
	// Category is a category name or CategoryAll.
	Category string
	// Sort orders the filtered result. SortDefault keeps filtered order.
	Sort SortKey
}

// FilterProducts applies q to the catalog. Term and category filters are
// conjunctive; sorting is stable so equal prices keep their catalog order.
func FilterProducts(catalog []models.Product, q Query) []models.Product {
	result := make([]models.Product, 0, len(catalog))

	term := strings.ToLower(strings.TrimSpace(q.Term))
	for _, p := range catalog {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && string(p.Category) != q.Category {
			continue
		}
		result = append(result, p)
	}

	sortByPrice(result, q.Sort)
	return result
}

// PurchaseQuery describes a purchase-history request. The search term also
// matches category and resolved seller name, mirroring what the history
// page lets people search by.
type PurchaseQuery struct {
	Term string
	Sort SortKey
}

// PurchaseHistory projects the ledger for display: most recent purchase
// first, then term filtering, then optional price sorting.
func PurchaseHistory(ledger []models.Product, userTable []models.User, q PurchaseQuery) []models.Product {
	result := make([]models.Product, 0, len(ledger))
	for i := len(ledger) - 1; i >= 0; i-- {
		result = append(result, ledger[i])
	}

	if term := strings.ToLower(strings.TrimSpace(q.Term)); term != "" {
		filtered := result[:0]
		for _, p := range result {
			if strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(string(p.Category)), term) ||
				strings.Contains(strings.ToLower(SellerName(userTable, p.SellerID)), term) {
				filtered = append(filtered, p)
			}
		}
		result = filtered
	}

	sortByPrice(result, q.Sort)
	return result
}

// Group is a run of products sharing a category.
type Group struct {
	Category models.Category
	Items    []models.Product
}

// GroupByCategory buckets items by category. Groups appear in first-seen
// order and members keep their relative order within each group.
func GroupByCategory(items []models.Product) []Group {
	var groups []Group
	index := make(map[models.Category]int)

	for _, p := range items {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, Group{Category: p.Category})
		}
		groups[i].Items = append(groups[i].Items, p)
	}

	return groups
}

// SellerName resolves a seller id against the user table, falling back to
// UnknownSeller for dangling references.
func SellerName(userTable []models.User, sellerID string) string {
	for _, u := range userTable {
		if u.ID == sellerID {
			return u.Username
		}
	}
	return UnknownSeller
}

func sortByPrice(items []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	}
}
