package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/ecofinds/ecofinds-go/internal/logging"
	"github.com/ecofinds/ecofinds-go/internal/models"
	"github.com/ecofinds/ecofinds-go/internal/repositories/state"
	"github.com/ecofinds/ecofinds-go/internal/repositories/users"
	"github.com/ecofinds/ecofinds-go/internal/seed"
	"github.com/google/uuid"
)

// Accounts owns the registered-user table and the current session.
//
// Contract (all mutators persist synchronously, and storage write failures
// are logged but never surfaced - the in-memory state remains the source of
// truth for readers):
//   - Login succeeds iff a user with matching email and password exists.
//     Plain equality, no hashing: the credential story is illustrative only.
//   - Signup fails when the email is taken; otherwise it creates the user
//     and logs them in.
//   - Logout clears the session unconditionally and is idempotent.
//   - UpdateUser is self-service only: it is a no-op unless the updated id
//     matches the current session. The stored password is never touched.
type Accounts struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	users   []models.User
	session *models.Session
}

// NewAccounts rehydrates account state from the database. A read failure or
// an empty user table falls back to the built-in seed users; a corrupt
// session record falls back to "not logged in". Errors are swallowed by
// design - rehydration must always produce a usable store.
func NewAccounts(ctx context.Context, db *sql.DB, log logging.Logger) *Accounts {
	a := &Accounts{db: db, log: log.With("store", "accounts")}

	repo := users.NewSQLiteRepository(db)
	loaded, err := repo.GetAll(ctx)
	if err != nil || len(loaded) == 0 {
		if err != nil {
			a.log.Warn(ctx, "failed to load users, falling back to seed", "error", err)
		}
		loaded = seed.Users()
		for _, u := range loaded {
			if err := repo.Create(ctx, u); err != nil {
				a.log.Warn(ctx, "failed to persist seed user", "id", u.ID, "error", err)
			}
		}
	}
	a.users = loaded

	raw, err := state.NewSQLiteRepository(db).Get(ctx, state.SessionKey)
	if err != nil {
		a.log.Warn(ctx, "failed to load session", "error", err)
	} else if raw != nil {
		var s models.Session
		if err := json.Unmarshal(raw, &s); err == nil {
			a.session = &s
		}
	}

	return a
}

// Users returns a copy of the registered-user table.
func (a *Accounts) Users() []models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.User, len(a.users))
	copy(out, a.users)
	return out
}

// Session returns the current session projection and whether one exists.
func (a *Accounts) Session() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}

// IsAuthenticated reports whether someone is logged in.
func (a *Accounts) IsAuthenticated() bool {
	_, ok := a.Session()
	return ok
}

// Login authenticates by direct email+password equality and, on success,
// installs the user's public projection as the session.
func (a *Accounts) Login(ctx context.Context, email, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Email == email && u.Password == password {
			s := u.Public()
			a.session = &s
			a.persistSession(ctx)
			return true
		}
	}
	return false
}

// Signup registers a new user and logs them in. It returns false, mutating
// nothing, when the email is already registered.
func (a *Accounts) Signup(ctx context.Context, email, username, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Email == email {
			return false
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Username: username,
		Password: password,
	}
	a.users = append(a.users, user)
	if err := users.NewSQLiteRepository(a.db).Create(ctx, user); err != nil {
		a.log.Error(ctx, "failed to persist user", "id", user.ID, "error", err)
	}

	s := user.Public()
	a.session = &s
	a.persistSession(ctx)
	return true
}

// Logout clears the session. Calling it while logged out is harmless.
func (a *Accounts) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = nil
	if err := state.NewSQLiteRepository(a.db).Delete(ctx, state.SessionKey); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
	}
}

// UpdateUser applies a profile edit for the currently logged-in user.
// Email and username are taken from updated; the password already on record
// is preserved. Edits for any other id are a silent no-op.
func (a *Accounts) UpdateUser(ctx context.Context, updated models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil || a.session.UserID != updated.ID {
		return
	}

	for i, u := range a.users {
		if u.ID != updated.ID {
			continue
		}
		u.Email = updated.Email
		u.Username = updated.Username
		a.users[i] = u

		s := u.Public()
		a.session = &s

		if err := users.NewSQLiteRepository(a.db).Update(ctx, u); err != nil {
			a.log.Error(ctx, "failed to persist user update", "id", u.ID, "error", err)
		}
		a.persistSession(ctx)
		return
	}
}

// persistSession mirrors the in-memory session to storage. Callers must hold
// the write lock.
func (a *Accounts) persistSession(ctx context.Context) {
	repo := state.NewSQLiteRepository(a.db)
	if a.session == nil {
		if err := repo.Delete(ctx, state.SessionKey); err != nil {
			a.log.Error(ctx, "failed to clear session", "error", err)
		}
		return
	}
	raw, err := json.Marshal(a.session)
	if err != nil {
		a.log.Error(ctx, "failed to marshal session", "error", err)
		return
	}
	if err := repo.Set(ctx, state.SessionKey, raw); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
	}
}
