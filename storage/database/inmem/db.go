// Package inmemdb provides in-memory repository implementations used by
// tests and local experiments. They honor the same contracts as the Postgres
// repositories, including ordering and ownership rules.
package inmemdb

import (
	"sync"

	"github.com/edubridge/edubridge/core/mentorship"
	"github.com/edubridge/edubridge/core/mood"
	"github.com/edubridge/edubridge/core/session"
	"github.com/edubridge/edubridge/core/study"
	"github.com/edubridge/edubridge/core/user"
)

type DB struct {
	mutex sync.RWMutex

	userPK  int
	moodPK  int
	planPK  int
	matchPK int

	users    map[int]*user.User
	sessions map[string]*session.Session
	moods    map[int]*mood.Entry
	plans    map[int]*study.Plan
	matches  map[int]*mentorship.Match
}

func NewDB() *DB {
	db := new(DB)
	db.reset()
	return db
}

func (db *DB) reset() {
	db.userPK, db.moodPK, db.planPK, db.matchPK = 0, 0, 0, 0
	db.users = make(map[int]*user.User)
	db.sessions = make(map[string]*session.Session)
	db.moods = make(map[int]*mood.Entry)
	db.plans = make(map[int]*study.Plan)
	db.matches = make(map[int]*mentorship.Match)
}

// Reset drops all data; for tests.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.reset()
}
