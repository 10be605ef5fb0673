package store

import (
	"context"
	"database/sql"
	"sync"

	"github.com/ecofinds/ecofinds-go/internal/dbx"
	"github.com/ecofinds/ecofinds-go/internal/logging"
	"github.com/ecofinds/ecofinds-go/internal/models"
	"github.com/ecofinds/ecofinds-go/internal/repositories/cart"
	"github.com/ecofinds/ecofinds-go/internal/repositories/products"
	"github.com/ecofinds/ecofinds-go/internal/repositories/purchases"
	"github.com/ecofinds/ecofinds-go/internal/seed"
	"github.com/google/uuid"
)

// Catalog owns the product table, the shopping cart, and the purchase
// ledger. The store layer trusts its callers for field validation (price,
// required fields); it does enforce listing ownership on product updates.
type Catalog struct {
	db  *sql.DB
	log logging.Logger

	mu        sync.RWMutex
	products  []models.Product
	cart      []models.CartItem
	purchases []models.Product
}

// NewCatalog rehydrates catalog state from the database. A failed or empty
// product load falls back to the built-in seed catalog; cart and ledger fall
// back to empty collections. Errors are swallowed by design.
func NewCatalog(ctx context.Context, db *sql.DB, log logging.Logger) *Catalog {
	c := &Catalog{db: db, log: log.With("store", "catalog")}

	prodRepo := products.NewSQLiteRepository(db)
	loaded, err := prodRepo.GetAll(ctx)
	if err != nil || len(loaded) == 0 {
		if err != nil {
			c.log.Warn(ctx, "failed to load products, falling back to seed", "error", err)
		}
		loaded = seed.Products()
		for _, p := range loaded {
			if err := prodRepo.Create(ctx, p); err != nil {
				c.log.Warn(ctx, "failed to persist seed product", "id", p.ID, "error", err)
			}
		}
	}
	c.products = loaded

	if items, err := cart.NewSQLiteRepository(db).GetAll(ctx); err != nil {
		c.log.Warn(ctx, "failed to load cart", "error", err)
	} else {
		c.cart = items
	}

	if ledger, err := purchases.NewSQLiteRepository(db).GetAll(ctx); err != nil {
		c.log.Warn(ctx, "failed to load purchases", "error", err)
	} else {
		c.purchases = ledger
	}

	return c
}

// Products returns a copy of the catalog in insertion order.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Cart returns a copy of the cart in the order lines were first added.
func (c *Catalog) Cart() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CartItem, len(c.cart))
	copy(out, c.cart)
	return out
}

// Purchases returns a copy of the ledger, oldest purchase first.
func (c *Catalog) Purchases() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.purchases))
	copy(out, c.purchases)
	return out
}

// ProductByID returns the catalog entry with the given id.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct assigns a fresh id to p, appends it to the catalog, and
// returns the stored product.
func (c *Catalog) AddProduct(ctx context.Context, p models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	p.ID = uuid.NewString()
	c.products = append(c.products, p)
	if err := products.NewSQLiteRepository(c.db).Create(ctx, p); err != nil {
		c.log.Error(ctx, "failed to persist product", "id", p.ID, "error", err)
	}
	return p
}

// UpdateProduct replaces the catalog entry with a matching id. The edit is
// refused (a silent no-op, like every other miss at this layer) when the id
// is unknown or when the update would change the listing's seller - only the
// owning seller may edit a listing.
func (c *Catalog) UpdateProduct(ctx context.Context, p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.products {
		if existing.ID != p.ID {
			continue
		}
		if existing.SellerID != p.SellerID {
			c.log.Warn(ctx, "refusing product update from non-owner",
				"id", p.ID, "owner", existing.SellerID, "caller", p.SellerID)
			return
		}
		c.products[i] = p
		if err := products.NewSQLiteRepository(c.db).Update(ctx, p); err != nil {
			c.log.Error(ctx, "failed to persist product update", "id", p.ID, "error", err)
		}
		return
	}
}

// DeleteProduct removes the catalog entry with the given id; unknown ids
// are a silent no-op. Ledger snapshots referencing the product are kept.
func (c *Catalog) DeleteProduct(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID != id {
			continue
		}
		c.products = append(c.products[:i], c.products[i+1:]...)
		if err := products.NewSQLiteRepository(c.db).Delete(ctx, id); err != nil {
			c.log.Error(ctx, "failed to persist product delete", "id", id, "error", err)
		}
		return
	}
}

// AddToCart inserts a line for p with quantity one, or increments the
// quantity of an existing line. The line keeps the product attributes
// captured when it was first added.
func (c *Catalog) AddToCart(ctx context.Context, p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	repo := cart.NewSQLiteRepository(c.db)
	for i, item := range c.cart {
		if item.ID == p.ID {
			c.cart[i].Quantity++
			if err := repo.Upsert(ctx, c.cart[i]); err != nil {
				c.log.Error(ctx, "failed to persist cart line", "product_id", p.ID, "error", err)
			}
			return
		}
	}

	line := models.CartItem{Product: p, Quantity: 1}
	c.cart = append(c.cart, line)
	if err := repo.Upsert(ctx, line); err != nil {
		c.log.Error(ctx, "failed to persist cart line", "product_id", p.ID, "error", err)
	}
}

// RemoveFromCart drops the whole line for the given product id (not a
// decrement); unknown ids are a silent no-op.
func (c *Catalog) RemoveFromCart(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.cart {
		if item.ID != productID {
			continue
		}
		c.cart = append(c.cart[:i], c.cart[i+1:]...)
		if err := cart.NewSQLiteRepository(c.db).Delete(ctx, productID); err != nil {
			c.log.Error(ctx, "failed to persist cart removal", "product_id", productID, "error", err)
		}
		return
	}
}

// Checkout converts the entire cart into ledger snapshots and clears the
// cart in one step; readers never observe a half-finished checkout. A line
// with quantity N contributes N snapshots, so the sum of appended snapshot
// prices equals the cart subtotal. The returned slice is what was appended.
func (c *Catalog) Checkout(ctx context.Context) []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.cart) == 0 {
		return nil
	}

	var snapshots []models.Product
	for _, item := range c.cart {
		for i := 0; i < item.Quantity; i++ {
			snapshots = append(snapshots, item.Product)
		}
	}

	c.purchases = append(c.purchases, snapshots...)
	c.cart = nil

	err := dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := purchases.NewSQLiteRepository(tx).Append(ctx, snapshots); err != nil {
			return err
		}
		return cart.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		c.log.Error(ctx, "failed to persist checkout", "items", len(snapshots), "error", err)
	}

	return snapshots
}
