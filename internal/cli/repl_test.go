package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Browse(ctx context.Context) error         { return f.record("browse") }
func (f *fakeExec) AddProduct(ctx context.Context) error     { return f.record("sell") }
func (f *fakeExec) EditProduct(ctx context.Context) error    { return f.record("edit") }
func (f *fakeExec) DeleteProduct(ctx context.Context) error  { return f.record("delete") }
func (f *fakeExec) MyListings(ctx context.Context) error     { return f.record("mylistings") }
func (f *fakeExec) AddToCart(ctx context.Context) error      { return f.record("addtocart") }
func (f *fakeExec) ShowCart(ctx context.Context) error       { return f.record("cart") }
func (f *fakeExec) RemoveFromCart(ctx context.Context) error { return f.record("remove") }
func (f *fakeExec) Checkout(ctx context.Context) error       { return f.record("checkout") }
func (f *fakeExec) Purchases(ctx context.Context) error      { return f.record("purchases") }
func (f *fakeExec) Profile(ctx context.Context) error        { return f.record("profile") }

func muteREPL(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteREPL(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse",
		"addtocart p1",
		"cart",
		"checkout",
		"purchases",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"login", "browse", "addtocart", "cart", "checkout", "purchases", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, want)
		}
	}
}

func TestRunREPL_GuestCannotUseAuthedCommands(t *testing.T) {
	muteREPL(t)

	input := strings.NewReader(strings.Join([]string{
		"checkout",
		"sell",
		"browse",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "browse" {
		t.Fatalf("guest should only reach browse, got %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("no calls expected, got %v", exec.calls)
	}
}
