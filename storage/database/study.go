package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/study"
)

type studyRepository struct {
	db *sqlx.DB
}

func NewStudyRepository(db *sqlx.DB) study.Repository {
	return &studyRepository{db: db}
}

func (repo *studyRepository) CreatePlan(plan study.Plan) (study.Plan, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO study_plans (user_id, subject, topic, due_date, is_done, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		plan.UserID, plan.Subject, plan.Topic, plan.DueDate, plan.IsDone, plan.CreatedAt,
	).Scan(&plan.ID)
	if err != nil {
		return study.Plan{}, errors.Wrap(err, "creating study plan")
	}
	return plan, nil
}

func (repo *studyRepository) QueryPlansByOwner(ownerID, limit int) ([]study.Plan, error) {
	query := `SELECT * FROM study_plans WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []interface{}{ownerID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	plans := make([]study.Plan, 0)
	if err := repo.db.Select(&plans, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying study plans")
	}
	return plans, nil
}

// TogglePlanDone flips is_done in one conditional UPDATE so the owner check
// and the write cannot be separated by a concurrent request.
func (repo *studyRepository) TogglePlanDone(ownerID, planID int) (study.Plan, error) {
	var plan study.Plan
	err := repo.db.QueryRowx(
		`UPDATE study_plans SET is_done = NOT is_done
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, subject, topic, due_date, is_done, created_at`,
		planID, ownerID,
	).StructScan(&plan)
	if err != nil {
		if err == sql.ErrNoRows {
			// missing and not-owned are indistinguishable on purpose
			return study.Plan{}, core.ErrNotFound
		}
		return study.Plan{}, errors.Wrap(err, "toggling study plan")
	}
	return plan, nil
}
