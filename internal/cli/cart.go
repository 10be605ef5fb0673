package cli

import (
	"context"
	"fmt"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// AddToCart puts one unit of a product in the cart.
func (a *App) AddToCart(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter product id", a.out)
	if err != nil {
		return err
	}

	p, found := a.catalog.ProductByID(id)
	if !found {
		a.toast("Product not found.", models.SeverityError)
		return nil
	}

	a.catalog.AddToCart(ctx, p)
	a.toast("Item added to cart!", models.SeveritySuccess)
	return nil
}

// ShowCart prints the cart lines and the subtotal.
func (a *App) ShowCart(ctx context.Context) error {
	lines := a.catalog.Cart()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	for _, item := range lines {
		fmt.Fprintf(a.out, "%s x%d - %.2f (id: %s)\n", item.Title, item.Quantity, item.Subtotal(), item.ID)
	}
	fmt.Fprintf(a.out, "Subtotal: %.2f\n", models.CartSubtotal(lines))
	return nil
}

// RemoveFromCart drops a whole cart line.
func (a *App) RemoveFromCart(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter product id to remove", a.out)
	if err != nil {
		return err
	}

	a.catalog.RemoveFromCart(ctx, id)
	a.toast("Item removed from cart.", models.SeveritySuccess)
	return nil
}

// Checkout buys everything currently in the cart.
func (a *App) Checkout(ctx context.Context) error {
	lines := a.catalog.Cart()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	total := models.CartSubtotal(lines)
	bought := a.catalog.Checkout(ctx)

	fmt.Fprintf(a.out, "Purchased %d item(s) for %.2f\n", len(bought), total)
	a.toast("Thank you for your purchase!", models.SeveritySuccess)
	return nil
}
