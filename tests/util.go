package testutil

import (
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/mood"
	"github.com/edubridge/edubridge/core/study"
	"github.com/edubridge/edubridge/core/user"
)

// NewValidator returns a validator with every custom rule and translation
// registered, as the API bootstrap does.
func NewValidator(t *testing.T) (*validator.Validate, ut.Translator) {
	t.Helper()

	locale := en.New()
	translator, ok := ut.New(locale, locale).GetTranslator(locale.Locale())
	if !ok {
		t.Fatalf("NewValidator() translator not found for locale %q", locale.Locale())
	}
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	mood.InitValidators(validate, translator)
	return validate, translator
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, pwd string,
	role user.Role,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateMoodEntry(
	t *testing.T,
	repo mood.Repository,
	usr user.User,
	m mood.Mood,
	note string,
	createdAt ...time.Time,
) mood.Entry {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	entry, err := repo.CreateEntry(mood.Entry{
		UserID:    usr.ID,
		Mood:      m,
		Note:      note,
		CreatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateMoodEntry() failed: %v", err)
	}
	return entry
}

func CreateStudyPlan(
	t *testing.T,
	repo study.Repository,
	usr user.User,
	subject, topic string,
	done bool,
	createdAt ...time.Time,
) study.Plan {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	plan, err := repo.CreatePlan(study.Plan{
		UserID:    usr.ID,
		Subject:   subject,
		Topic:     topic,
		IsDone:    done,
		CreatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateStudyPlan() failed: %v", err)
	}
	return plan
}
