package inmemdb

import (
	"sort"

	"github.com/edubridge/edubridge/core/mentorship"
)

type mentorshipRepository struct {
	db *DB
}

func NewMentorshipRepository(db *DB) mentorship.Repository {
	return &mentorshipRepository{db: db}
}

func (repo *mentorshipRepository) CreateMatch(match mentorship.Match) (mentorship.Match, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.matchPK++
	match.ID = repo.db.matchPK
	repo.db.matches[match.ID] = &match
	return match, nil
}

func (repo *mentorshipRepository) QueryAllMatches() ([]mentorship.Match, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matches := make([]mentorship.Match, 0, len(repo.db.matches))
	for _, match := range repo.db.matches {
		matches = append(matches, *match)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}
