package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/session"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) session.Repository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) CreateSession(sess session.Session) (session.Session, error) {
	_, err := repo.db.Exec(
		`INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		sess.Token, sess.UserID, sess.CreatedAt, sess.ExpiresAt,
	)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "creating session")
	}
	return sess, nil
}

func (repo *sessionRepository) GetSession(token string) (session.Session, error) {
	var sess session.Session
	if err := repo.db.Get(&sess, `SELECT * FROM sessions WHERE token = $1`, token); err != nil {
		if err == sql.ErrNoRows {
			return session.Session{}, session.ErrNoSession
		}
		return session.Session{}, errors.Wrap(err, "getting session")
	}
	return sess, nil
}

func (repo *sessionRepository) DeleteSession(token string) error {
	if _, err := repo.db.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return nil
}

func (repo *sessionRepository) DeleteExpiredSessions() error {
	if _, err := repo.db.Exec(`DELETE FROM sessions WHERE expires_at < now()`); err != nil {
		return errors.Wrap(err, "deleting expired sessions")
	}
	return nil
}
