package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/user"
)

var (
	// ErrAuthenticationFailed deliberately does not reveal whether the email
	// exists or the password was wrong.
	ErrAuthenticationFailed = errors.New("invalid email or password")

	// ErrNoSession means the token is missing, unknown, expired or destroyed.
	ErrNoSession = errors.New("no active session")
)

// Session binds a server-issued opaque token to a user.
type Session struct {
	Token     string    `db:"token"`
	UserID    int       `db:"user_id"`
	CreatedAt time.Time `db:"created_at"` // UTC
	ExpiresAt time.Time `db:"expires_at"` // UTC
}

func (s Session) Expired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

type (
	Repository interface {
		CreateSession(sess Session) (Session, error)
		// GetSession returns ErrNoSession for an unknown token.
		GetSession(token string) (Session, error)
		DeleteSession(token string) error
		DeleteExpiredSessions() error
	}

	Manager struct {
		repo   Repository
		usrSvc *user.Service
		ttl    time.Duration
	}
)

func NewManager(repo Repository, usrSvc *user.Service, conf *core.Config) *Manager {
	return &Manager{repo: repo, usrSvc: usrSvc, ttl: conf.SessionExpirationDelta}
}

// Authenticate verifies the credentials and, on success, issues a new
// Session. The password check is a constant-time bcrypt comparison.
func (m *Manager) Authenticate(email, pwd string) (user.User, Session, error) {
	usr, err := m.usrSvc.GetByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, Session{}, ErrAuthenticationFailed
		}
		return user.User{}, Session{}, pkgerrors.Wrap(err, "finding user by email")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return user.User{}, Session{}, ErrAuthenticationFailed
	}

	now := time.Now().UTC()
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    usr.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	sess, err = m.repo.CreateSession(sess)
	if err != nil {
		return user.User{}, Session{}, pkgerrors.Wrap(err, "creating session")
	}
	return usr, sess, nil
}

// Resolve dereferences a token to the live user record so that role or name
// changes are visible immediately.
func (m *Manager) Resolve(token string) (user.User, error) {
	if token == "" {
		return user.User{}, ErrNoSession
	}
	sess, err := m.repo.GetSession(token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return user.User{}, ErrNoSession
		}
		return user.User{}, pkgerrors.Wrap(err, "getting session")
	}
	if sess.Expired() {
		_ = m.repo.DeleteSession(token)
		return user.User{}, ErrNoSession
	}

	usr, err := m.usrSvc.GetByID(sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNoSession
		}
		return user.User{}, pkgerrors.Wrap(err, "finding session user")
	}
	return usr, nil
}

// Destroy invalidates the token; a destroyed token fails all later Resolve
// calls.
func (m *Manager) Destroy(token string) error {
	return m.repo.DeleteSession(token)
}

// PurgeExpired removes expired sessions from the store.
func (m *Manager) PurgeExpired() error {
	return m.repo.DeleteExpiredSessions()
}
