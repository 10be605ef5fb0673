package cli

import (
	"context"
	"fmt"

	"github.com/ecofinds/ecofinds-go/internal/models"
)

// Profile shows the current session and lets the user edit email and
// username. Empty answers keep the current values; the password on record
// is never touched here.
func (a *App) Profile(ctx context.Context) error {
	s, ok := a.accounts.Session()
	if !ok {
		return errNotSignedIn
	}

	fmt.Fprintf(a.out, "Email: %s\nUsername: %s\n", s.Email, s.Username)

	email, err := GetSimpleTextDefault(a.reader, "New email", s.Email, a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleTextDefault(a.reader, "New username", s.Username, a.out)
	if err != nil {
		return err
	}
	if email == s.Email && username == s.Username {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	a.accounts.UpdateUser(ctx, models.User{ID: s.UserID, Email: email, Username: username})
	a.toast("Profile updated successfully!", models.SeveritySuccess)
	return nil
}
