package mood

import (
	"time"

	"github.com/edubridge/edubridge/core/user"
)

type (
	Repository interface {
		CreateEntry(entry Entry) (Entry, error)
		// QueryEntriesByOwner returns ownerID's entries ordered most recent
		// first, capped at limit. limit <= 0 means no cap.
		QueryEntriesByOwner(ownerID, limit int) ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a check-in for owner. The owner always comes from the
// authenticated session, never from the client.
func (svc *Service) Create(owner user.User, ne NewEntry) (Entry, error) {
	entry := Entry{
		UserID:    owner.ID,
		Mood:      Mood(ne.Mood),
		Note:      ne.Note,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateEntry(entry)
}

func (svc *Service) ListRecent(ownerID, limit int) ([]Entry, error) {
	return svc.repo.QueryEntriesByOwner(ownerID, limit)
}
