package database

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/mentorship"
)

type mentorshipRepository struct {
	db *sqlx.DB
}

func NewMentorshipRepository(db *sqlx.DB) mentorship.Repository {
	return &mentorshipRepository{db: db}
}

func (repo *mentorshipRepository) CreateMatch(match mentorship.Match) (mentorship.Match, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO mentorship_matches (student_id, mentor_id, subject, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		match.StudentID, match.MentorID, match.Subject, match.CreatedAt,
	).Scan(&match.ID)
	if err != nil {
		return mentorship.Match{}, errors.Wrap(err, "creating mentorship match")
	}
	return match, nil
}

func (repo *mentorshipRepository) QueryAllMatches() ([]mentorship.Match, error) {
	matches := make([]mentorship.Match, 0)
	if err := repo.db.Select(&matches, `SELECT * FROM mentorship_matches ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying mentorship matches")
	}
	return matches, nil
}
