package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ecofinds/ecofinds-go/internal/models"
	"github.com/ecofinds/ecofinds-go/internal/views"
)

var errNotSignedIn = errors.New("not signed in")

// Browse runs one search over the catalog: free-text term, category filter
// and price sort, all optional.
func (a *App) Browse(ctx context.Context) error {
	term, err := GetSimpleText(a.reader, "Search term (empty for all)", a.out)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, categoryPrompt("Category (empty for all)"), a.out)
	if err != nil {
		return err
	}
	if category == "" {
		category = views.CategoryAll
	}
	sortKey, err := a.askSortKey()
	if err != nil {
		return err
	}

	found := views.FilterProducts(a.catalog.Products(), views.Query{
		Term:     term,
		Category: category,
		Sort:     sortKey,
	})
	if len(found) == 0 {
		fmt.Fprintln(a.out, "No products found. Try adjusting your search or filters.")
		return nil
	}
	for _, p := range found {
		a.printProduct(p)
	}
	return nil
}

// AddProduct lists a new product for sale under the current user.
func (a *App) AddProduct(ctx context.Context) error {
	s, ok := a.accounts.Session()
	if !ok {
		return errNotSignedIn
	}

	draft, err := a.askProduct(models.Product{Category: models.CategoryOther})
	if err != nil {
		return err
	}
	draft.SellerID = s.UserID

	created := a.catalog.AddProduct(ctx, draft)
	a.toast("Product listed!", models.SeveritySuccess)
	a.log.Debug(ctx, "product listed", "id", created.ID)
	return nil
}

// EditProduct edits one of the current user's listings. Ownership is
// checked here as well, so other sellers' ids are rejected before the
// store sees them.
func (a *App) EditProduct(ctx context.Context) error {
	s, ok := a.accounts.Session()
	if !ok {
		return errNotSignedIn
	}

	id, err := GetSimpleText(a.reader, "Enter product id", a.out)
	if err != nil {
		return err
	}
	existing, found := a.catalog.ProductByID(id)
	if !found || existing.SellerID != s.UserID {
		a.toast("No such listing of yours.", models.SeverityError)
		return nil
	}

	updated, err := a.askProductDefaults(existing)
	if err != nil {
		return err
	}
	a.catalog.UpdateProduct(ctx, updated)
	a.toast("Listing updated!", models.SeveritySuccess)
	return nil
}

// DeleteProduct removes one of the current user's listings.
func (a *App) DeleteProduct(ctx context.Context) error {
	s, ok := a.accounts.Session()
	if !ok {
		return errNotSignedIn
	}

	id, err := GetSimpleText(a.reader, "Enter product id", a.out)
	if err != nil {
		return err
	}
	existing, found := a.catalog.ProductByID(id)
	if !found || existing.SellerID != s.UserID {
		a.toast("No such listing of yours.", models.SeverityError)
		return nil
	}

	a.catalog.DeleteProduct(ctx, id)
	a.toast("Listing deleted.", models.SeveritySuccess)
	return nil
}

// MyListings prints the current user's listings.
func (a *App) MyListings(ctx context.Context) error {
	s, ok := a.accounts.Session()
	if !ok {
		return errNotSignedIn
	}

	var count int
	for _, p := range a.catalog.Products() {
		if p.SellerID == s.UserID {
			a.printProduct(p)
			count++
		}
	}
	if count == 0 {
		fmt.Fprintln(a.out, "You have no listings yet. Use 'sell' to add one.")
	}
	return nil
}

// askProduct prompts for every product field of a new listing.
func (a *App) askProduct(defaults models.Product) (models.Product, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return models.Product{}, err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return models.Product{}, err
	}
	price, err := a.askPrice("")
	if err != nil {
		return models.Product{}, err
	}
	category, err := a.askCategory(string(defaults.Category))
	if err != nil {
		return models.Product{}, err
	}
	imageURL, err := GetSimpleText(a.reader, "Image URL (optional)", a.out)
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
	}, nil
}

// askProductDefaults prompts for product fields, keeping the existing value
// on an empty answer. ID and seller are carried over unchanged.
func (a *App) askProductDefaults(existing models.Product) (models.Product, error) {
	title, err := GetSimpleTextDefault(a.reader, "Title", existing.Title, a.out)
	if err != nil {
		return models.Product{}, err
	}
	description, err := GetSimpleTextDefault(a.reader, "Description", existing.Description, a.out)
	if err != nil {
		return models.Product{}, err
	}
	price, err := a.askPrice(strconv.FormatFloat(existing.Price, 'f', -1, 64))
	if err != nil {
		return models.Product{}, err
	}
	category, err := a.askCategory(string(existing.Category))
	if err != nil {
		return models.Product{}, err
	}
	imageURL, err := GetSimpleTextDefault(a.reader, "Image URL", existing.ImageURL, a.out)
	if err != nil {
		return models.Product{}, err
	}

	existing.Title = title
	existing.Description = description
	existing.Price = price
	existing.Category = category
	existing.ImageURL = imageURL
	return existing, nil
}

// askPrice keeps prompting until a non-negative number is entered. The
// store trusts its caller on validation, so this is where it happens.
func (a *App) askPrice(def string) (float64, error) {
	for {
		var text string
		var err error
		if def == "" {
			text, err = GetSimpleText(a.reader, "Price", a.out)
		} else {
			text, err = GetSimpleTextDefault(a.reader, "Price", def, a.out)
		}
		if err != nil {
			return 0, err
		}
		price, err := strconv.ParseFloat(text, 64)
		if err != nil || price < 0 {
			fmt.Fprintln(a.out, "Please enter a non-negative number.")
			continue
		}
		return price, nil
	}
}

func (a *App) askCategory(def string) (models.Category, error) {
	for {
		var text string
		var err error
		if def == "" {
			text, err = GetSimpleText(a.reader, categoryPrompt("Category"), a.out)
		} else {
			text, err = GetSimpleTextDefault(a.reader, categoryPrompt("Category"), def, a.out)
		}
		if err != nil {
			return "", err
		}
		c := models.Category(text)
		if !c.Valid() {
			fmt.Fprintln(a.out, "Unknown category.")
			continue
		}
		return c, nil
	}
}

func categoryPrompt(label string) string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return label + " (" + strings.Join(names, ", ") + ")"
}

// askSortKey maps a menu answer to a SortKey; empty input keeps default
// ordering.
func (a *App) askSortKey() (views.SortKey, error) {
	answer, err := GetSimpleText(a.reader, "Sort (asc = price low to high, desc = price high to low, empty = default)", a.out)
	if err != nil {
		return views.SortDefault, err
	}
	switch answer {
	case "asc":
		return views.SortPriceAsc, nil
	case "desc":
		return views.SortPriceDesc, nil
	default:
		return views.SortDefault, nil
	}
}
