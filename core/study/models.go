package study

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edubridge/edubridge/core"
)

const dueDateLayout = "2006-01-02"

type Plan struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Subject   string     `json:"subject" db:"subject"`
	Topic     string     `json:"topic" db:"topic"`
	DueDate   *time.Time `json:"due_date,omitempty" db:"due_date"`
	IsDone    bool       `json:"is_done" db:"is_done"` // the only mutable field
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // UTC
}

// NewPlan is the study plan form.
type NewPlan struct {
	Subject string `form:"subject" validate:"required,max=120"`
	Topic   string `form:"topic" validate:"required,max=255"`
	DueDate string `form:"due_date" validate:"omitempty,datetime=2006-01-02"`
	IsDone  bool   `form:"is_done"`
}

func (np *NewPlan) Validate(validate *validator.Validate) error {
	np.Subject = core.CleanString(np.Subject)
	np.Topic = core.CleanString(np.Topic)
	np.DueDate = core.CleanString(np.DueDate)
	return validate.Struct(np)
}

func (np NewPlan) dueDate() *time.Time {
	if np.DueDate == "" {
		return nil
	}
	// np is validated; the layout cannot fail here
	t, err := time.Parse(dueDateLayout, np.DueDate)
	if err != nil {
		return nil
	}
	return &t
}
