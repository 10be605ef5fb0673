package cli

import (
	"context"
	"fmt"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if !a.accounts.Signup(ctx, email, username, string(password)) {
		a.toast("An account with this email already exists.", models.SeverityError)
		return nil
	}

	a.toast("Welcome to EcoFinds, "+username+"!", models.SeveritySuccess)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if !a.accounts.Login(ctx, email, string(password)) {
		a.toast("Invalid email or password.", models.SeverityError)
		return nil
	}

	s, _ := a.accounts.Session()
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.accounts.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
