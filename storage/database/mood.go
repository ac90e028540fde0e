package database

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/mood"
)

type moodRepository struct {
	db *sqlx.DB
}

func NewMoodRepository(db *sqlx.DB) mood.Repository {
	return &moodRepository{db: db}
}

func (repo *moodRepository) CreateEntry(entry mood.Entry) (mood.Entry, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO mood_entries (user_id, mood, note, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		entry.UserID, entry.Mood, entry.Note, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return mood.Entry{}, errors.Wrap(err, "creating mood entry")
	}
	return entry, nil
}

func (repo *moodRepository) QueryEntriesByOwner(ownerID, limit int) ([]mood.Entry, error) {
	query := `SELECT * FROM mood_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []interface{}{ownerID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	entries := make([]mood.Entry, 0)
	if err := repo.db.Select(&entries, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying mood entries")
	}
	return entries, nil
}
