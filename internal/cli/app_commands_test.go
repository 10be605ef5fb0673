package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecofinds/ecofinds-go/internal/config"
	"github.com/ecofinds/ecofinds-go/internal/logging"
	"github.com/ecofinds/ecofinds-go/internal/notify"
	"github.com/ecofinds/ecofinds-go/internal/seed"
	"github.com/ecofinds/ecofinds-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires an App over a throwaway database, with scripted input
// and captured output.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := store.InitDatabase(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var out bytes.Buffer

	c := &config.Config{}
	c.LoadDefaults()

	return &App{
		config:   c,
		log:      log,
		db:       db,
		accounts: store.NewAccounts(ctx, db, log),
		catalog:  store.NewCatalog(ctx, db, log),
		notifier: notify.New(c.ToastDuration),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = old })
}

func TestLoginCommand(t *testing.T) {
	u := seed.Users()[0]
	app, out := newTestApp(t, u.Email+"\n")
	stubPassword(t, u.Password)

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Logged in as "+u.Username)
}

func TestLoginCommand_BadPassword(t *testing.T) {
	u := seed.Users()[0]
	app, out := newTestApp(t, u.Email+"\n")
	stubPassword(t, "wrong")

	require.NoError(t, app.Login(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Invalid email or password.")
}

func TestRegisterCommand_DuplicateEmail(t *testing.T) {
	u := seed.Users()[0]
	app, out := newTestApp(t, u.Email+"\nsomeone\n")
	stubPassword(t, "pw")

	require.NoError(t, app.Register(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "already exists")
}

func TestSellAndMyListings(t *testing.T) {
	input := strings.Join([]string{
		"Old Bicycle",          // title
		"Two wheels, rideable", // description
		"75.50",                // price
		"Other",                // category
		"",                     // image url
	}, "\n") + "\n"
	app, out := newTestApp(t, input)

	u := seed.Users()[0]
	require.True(t, app.accounts.Login(context.Background(), u.Email, u.Password))

	require.NoError(t, app.AddProduct(context.Background()))
	assert.Contains(t, out.String(), "Product listed!")

	out.Reset()
	require.NoError(t, app.MyListings(context.Background()))
	assert.Contains(t, out.String(), "Old Bicycle")
}

func TestAddProduct_RejectsNegativePriceUntilValid(t *testing.T) {
	input := strings.Join([]string{
		"Bargain",
		"cheap",
		"-5",     // rejected
		"oops",   // rejected
		"5",      // accepted
		"Other",
		"",
	}, "\n") + "\n"
	app, out := newTestApp(t, input)

	u := seed.Users()[0]
	require.True(t, app.accounts.Login(context.Background(), u.Email, u.Password))

	require.NoError(t, app.AddProduct(context.Background()))
	assert.Contains(t, out.String(), "Please enter a non-negative number.")
	assert.Contains(t, out.String(), "Product listed!")
}

func TestCartAndCheckoutFlow(t *testing.T) {
	p := seed.Products()[0]
	input := strings.Join([]string{
		p.ID, // addtocart
		p.ID, // addtocart again, increments
	}, "\n") + "\n"
	app, out := newTestApp(t, input)

	ctx := context.Background()
	require.NoError(t, app.AddToCart(ctx))
	require.NoError(t, app.AddToCart(ctx))
	require.NoError(t, app.ShowCart(ctx))
	assert.Contains(t, out.String(), "x2")

	out.Reset()
	require.NoError(t, app.Checkout(ctx))
	assert.Contains(t, out.String(), "Thank you for your purchase!")
	assert.Empty(t, app.catalog.Cart())
	assert.Len(t, app.catalog.Purchases(), 2)

	out.Reset()
	require.NoError(t, app.ShowCart(ctx))
	assert.Contains(t, out.String(), "Your cart is empty.")
}

func TestEditProduct_OtherSellersListingRejected(t *testing.T) {
	// prod-1 belongs to user-2; log in as user-1.
	p := seed.Products()[0]
	app, out := newTestApp(t, p.ID+"\n")

	u := seed.Users()[0]
	require.True(t, app.accounts.Login(context.Background(), u.Email, u.Password))

	require.NoError(t, app.EditProduct(context.Background()))
	assert.Contains(t, out.String(), "No such listing of yours.")
}

func TestProfileCommand_UpdatesSession(t *testing.T) {
	input := "fresh@example.com\nFresh\n"
	app, out := newTestApp(t, input)

	u := seed.Users()[0]
	require.True(t, app.accounts.Login(context.Background(), u.Email, u.Password))

	require.NoError(t, app.Profile(context.Background()))
	assert.Contains(t, out.String(), "Profile updated successfully!")

	s, ok := app.accounts.Session()
	require.True(t, ok)
	assert.Equal(t, "fresh@example.com", s.Email)
	assert.Equal(t, "Fresh", s.Username)
}

func TestPurchasesCommand_GroupsByCategory(t *testing.T) {
	// Buy a book, a toy and another book so grouping has two Books rows.
	books := seed.Products()[3]
	toys := seed.Products()[5]

	input := strings.Join([]string{
		"",  // search term
		"",  // sort
		"y", // group by category
	}, "\n") + "\n"
	app, out := newTestApp(t, input)

	ctx := context.Background()
	app.catalog.AddToCart(ctx, books)
	app.catalog.AddToCart(ctx, toys)
	app.catalog.Checkout(ctx)
	app.catalog.AddToCart(ctx, books)
	app.catalog.Checkout(ctx)

	require.NoError(t, app.Purchases(ctx))

	s := out.String()
	assert.Contains(t, s, "== Books ==")
	assert.Contains(t, s, "== Toys ==")
}
