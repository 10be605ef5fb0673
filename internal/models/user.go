// Package models defines the marketplace entities: users, the session
// projection, products, cart items and notifications.
package models

// User is a registered account. Password is kept in the user table only and
// must never leak into session-bound state.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// Session is the public projection of the authenticated user. It carries no
// password and exists only while someone is logged in.
type Session struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Public returns the session projection of u.
func (u User) Public() Session {
	return Session{UserID: u.ID, Email: u.Email, Username: u.Username}
}
