package study

import (
	"time"

	"github.com/edubridge/edubridge/core/user"
)

type (
	Repository interface {
		CreatePlan(plan Plan) (Plan, error)
		// QueryPlansByOwner returns ownerID's plans ordered most recent
		// first, capped at limit. limit <= 0 means no cap.
		QueryPlansByOwner(ownerID, limit int) ([]Plan, error)
		// TogglePlanDone flips is_done iff the plan belongs to ownerID, as a
		// single atomic conditional update. A plan that does not exist and a
		// plan owned by someone else both come back as core.ErrNotFound.
		TogglePlanDone(ownerID, planID int) (Plan, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a new plan for owner. The owner always comes from the
// authenticated session, never from the client.
func (svc *Service) Create(owner user.User, np NewPlan) (Plan, error) {
	plan := Plan{
		UserID:    owner.ID,
		Subject:   np.Subject,
		Topic:     np.Topic,
		DueDate:   np.dueDate(),
		IsDone:    np.IsDone,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreatePlan(plan)
}

func (svc *Service) ListByOwner(ownerID, limit int) ([]Plan, error) {
	return svc.repo.QueryPlansByOwner(ownerID, limit)
}

func (svc *Service) ToggleDone(owner user.User, planID int) (Plan, error) {
	return svc.repo.TogglePlanDone(owner.ID, planID)
}
