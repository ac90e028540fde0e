package user

import (
	"errors"
	"time"

	"github.com/edubridge/edubridge/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
	ErrUnknownRole = errors.New("unrecognized role")
)

type (
	Repository interface {
		// CheckEmailUniqueness matches emails case-insensitively; emails are
		// stored lowercased.
		CheckEmailUniqueness(email string) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		GetUserByEmail(email string) (User, error)
		FilterUsersByRole(role Role) ([]User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckEmailUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(email); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates a new User. nu is assumed validated; the plaintext
// password is hashed here and never persisted.
func (svc *Service) Register(nu NewUser) (User, error) {
	role, err := ParseRole(nu.Role)
	if err != nil {
		return User{}, err
	}
	usr := User{
		Name:      nu.Name,
		Email:     nu.Email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) FilterByRole(role Role) ([]User, error) {
	return svc.repo.FilterUsersByRole(role)
}
