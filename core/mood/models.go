package mood

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/edubridge/edubridge/core"
)

// Mood is the closed set of check-in moods.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodOkay     Mood = "okay"
	MoodStressed Mood = "stressed"
	MoodSad      Mood = "sad"
)

var AllMoods = []Mood{MoodHappy, MoodOkay, MoodStressed, MoodSad}

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodOkay, MoodStressed, MoodSad:
		return true
	}
	return false
}

func (m Mood) String() string { return string(m) }

// Entry is a single mood check-in. Entries are an immutable log; once
// created they are never changed.
type Entry struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Mood      Mood      `json:"mood" db:"mood"`
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewEntry is the check-in form.
type NewEntry struct {
	Mood string `form:"mood" validate:"required,mood"`
	Note string `form:"note" validate:"omitempty,max=1000"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.Mood = core.CleanString(ne.Mood, true /* lower */)
	ne.Note = core.CleanString(ne.Note)
	return validate.Struct(ne)
}

var (
	moodTag  = "mood"
	moodText = "invalid mood"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(moodTag, moodValidation)
	core.RegisterCustomTranslation(validate, translator, moodTag, moodText)
}

func moodValidation(fl validator.FieldLevel) bool {
	return Mood(fl.Field().String()).Valid()
}
