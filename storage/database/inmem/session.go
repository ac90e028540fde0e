package inmemdb

import (
	"time"

	"github.com/edubridge/edubridge/core/session"
)

type sessionRepository struct {
	db *DB
}

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) CreateSession(sess session.Session) (session.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.sessions[sess.Token] = &sess
	return sess, nil
}

func (repo *sessionRepository) GetSession(token string) (session.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sess, ok := repo.db.sessions[token]; ok {
		return *sess, nil
	}
	return session.Session{}, session.ErrNoSession
}

func (repo *sessionRepository) DeleteSession(token string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.sessions, token)
	return nil
}

func (repo *sessionRepository) DeleteExpiredSessions() error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	now := time.Now().UTC()
	for token, sess := range repo.db.sessions {
		if now.After(sess.ExpiresAt) {
			delete(repo.db.sessions, token)
		}
	}
	return nil
}
