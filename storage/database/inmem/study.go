package inmemdb

import (
	"sort"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/study"
)

type studyRepository struct {
	db *DB
}

func NewStudyRepository(db *DB) study.Repository {
	return &studyRepository{db: db}
}

func (repo *studyRepository) CreatePlan(plan study.Plan) (study.Plan, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.planPK++
	plan.ID = repo.db.planPK
	repo.db.plans[plan.ID] = &plan
	return plan, nil
}

func (repo *studyRepository) QueryPlansByOwner(ownerID, limit int) ([]study.Plan, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	plans := make([]study.Plan, 0)
	for _, plan := range repo.db.plans {
		if plan.UserID == ownerID {
			plans = append(plans, *plan)
		}
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].ID > plans[j].ID
		}
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	if limit > 0 && len(plans) > limit {
		plans = plans[:limit]
	}
	return plans, nil
}

func (repo *studyRepository) TogglePlanDone(ownerID, planID int) (study.Plan, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	plan, ok := repo.db.plans[planID]
	if !ok || plan.UserID != ownerID {
		return study.Plan{}, core.ErrNotFound
	}
	plan.IsDone = !plan.IsDone
	return *plan, nil
}
