package mentorship

import "time"

// Match pairs a student with a mentor for a subject. The table exists in the
// schema and round-trips through the repository, but no workflow uses it yet.
type Match struct {
	ID        int       `json:"id" db:"id"`
	StudentID int       `json:"student_id" db:"student_id"`
	MentorID  int       `json:"mentor_id" db:"mentor_id"`
	Subject   string    `json:"subject" db:"subject"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

type Repository interface {
	CreateMatch(match Match) (Match, error)
	QueryAllMatches() ([]Match, error)
}
