package inmemdb

import (
	"sort"

	"github.com/edubridge/edubridge/core/mood"
)

type moodRepository struct {
	db *DB
}

func NewMoodRepository(db *DB) mood.Repository {
	return &moodRepository{db: db}
}

func (repo *moodRepository) CreateEntry(entry mood.Entry) (mood.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.moodPK++
	entry.ID = repo.db.moodPK
	repo.db.moods[entry.ID] = &entry
	return entry, nil
}

func (repo *moodRepository) QueryEntriesByOwner(ownerID, limit int) ([]mood.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]mood.Entry, 0)
	for _, entry := range repo.db.moods {
		if entry.UserID == ownerID {
			entries = append(entries, *entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
