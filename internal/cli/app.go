// Package cli implements the interactive terminal frontend of EcoFinds:
// a REPL over the account and catalog stores, with toast-style
// notifications after mutating commands.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/ecofinds/ecofinds-go/internal/config"
	"github.com/ecofinds/ecofinds-go/internal/logging"
	"github.com/ecofinds/ecofinds-go/internal/models"
	"github.com/ecofinds/ecofinds-go/internal/notify"
	"github.com/ecofinds/ecofinds-go/internal/store"
	"github.com/ecofinds/ecofinds-go/internal/views"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	accounts *store.Accounts
	catalog  *store.Catalog
	notifier *notify.Notifier
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	return &App{
		config:   c,
		log:      log,
		db:       db,
		accounts: store.NewAccounts(ctx, db, log),
		catalog:  store.NewCatalog(ctx, db, log),
		notifier: notify.New(c.ToastDuration),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to EcoFinds! Your sustainable marketplace for pre-loved treasures.")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsAuthenticated()
}

// status renders the REPL prompt prefix: the logged-in username or "guest".
func (a *App) status() string {
	if s, ok := a.accounts.Session(); ok {
		return s.Username
	}
	return "guest"
}

// toast pushes a notification and echoes it to the terminal, which stands
// in for the visible toast slot.
func (a *App) toast(message string, severity models.Severity) {
	a.notifier.Notify(message, severity)
	fmt.Fprintf(a.out, "[%s] %s\n", severity, message)
}

func (a *App) printProduct(p models.Product) {
	fmt.Fprintf(a.out, "%s\n  %s | %.2f | seller: %s\n  id: %s\n",
		p.Title, p.Category, p.Price, views.SellerName(a.accounts.Users(), p.SellerID), p.ID)
}
