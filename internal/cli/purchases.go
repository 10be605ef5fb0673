package cli

import (
	"context"
	"fmt"

	"github.com/ecofinds/ecofinds-go/internal/views"
)

// Purchases shows the purchase history, most recent first, with optional
// term filtering, price sorting and grouping by category.
func (a *App) Purchases(ctx context.Context) error {
	ledger := a.catalog.Purchases()
	if len(ledger) == 0 {
		fmt.Fprintln(a.out, "You haven't made any purchases yet.")
		return nil
	}

	term, err := GetSimpleText(a.reader, "Search term (empty for all)", a.out)
	if err != nil {
		return err
	}
	sortKey, err := a.askSortKey()
	if err != nil {
		return err
	}
	groupAnswer, err := GetSimpleText(a.reader, "Group by category? (y/N)", a.out)
	if err != nil {
		return err
	}

	userTable := a.accounts.Users()
	history := views.PurchaseHistory(ledger, userTable, views.PurchaseQuery{
		Term: term,
		Sort: sortKey,
	})
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No purchases match your search.")
		return nil
	}

	if groupAnswer != "y" && groupAnswer != "Y" {
		for _, p := range history {
			fmt.Fprintf(a.out, "%s - %.2f | %s | seller: %s\n",
				p.Title, p.Price, p.Category, views.SellerName(userTable, p.SellerID))
		}
		return nil
	}

	for _, g := range views.GroupByCategory(history) {
		fmt.Fprintf(a.out, "== %s ==\n", g.Category)
		for _, p := range g.Items {
			fmt.Fprintf(a.out, "  %s - %.2f | seller: %s\n",
				p.Title, p.Price, views.SellerName(userTable, p.SellerID))
		}
	}
	return nil
}
