package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context) error
	MyListings(ctx context.Context) error
	AddToCart(ctx context.Context) error
	ShowCart(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Purchases(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the EcoFinds CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while not logged in:
//
//	help | register | login | browse | exit | quit
//
// Commands while logged in:
//
//	help       - show available commands
//	browse     - search, filter and sort the catalog
//	sell       - list a product for sale
//	mylistings - show your listings
//	edit       - edit one of your listings
//	delete     - delete one of your listings
//	addtocart  - put a product in the cart
//	cart       - show the cart
//	remove     - drop a cart line
//	checkout   - buy everything in the cart
//	purchases  - show purchase history
//	profile    - view and edit your profile
//	logout     - log out
//	exit | quit
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("[%s] enter command (help for list):", statusFn()))

		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		command := strings.Fields(line)[0]

		switch command {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printHelp(a.isLoggedIn())
			continue
		}

		if !a.isLoggedIn() {
			switch command {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "browse":
				_ = a.Browse(ctx)
			default:
				printlnFn("Unknown command:", command)
			}
			continue
		}

		switch command {
		case "browse":
			_ = a.Browse(ctx)
		case "sell":
			_ = a.AddProduct(ctx)
		case "mylistings":
			_ = a.MyListings(ctx)
		case "edit":
			_ = a.EditProduct(ctx)
		case "delete":
			_ = a.DeleteProduct(ctx)
		case "addtocart":
			_ = a.AddToCart(ctx)
		case "cart":
			_ = a.ShowCart(ctx)
		case "remove":
			_ = a.RemoveFromCart(ctx)
		case "checkout":
			_ = a.Checkout(ctx)
		case "purchases":
			_ = a.Purchases(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Unknown command:", command)
		}
	}
}

func printHelp(loggedIn bool) {
	if !loggedIn {
		printlnFn("Available commands: register, login, browse, help, exit")
		return
	}
	printlnFn("Available commands: browse, sell, mylistings, edit, delete, " +
		"addtocart, cart, remove, checkout, purchases, profile, logout, help, exit")
}
