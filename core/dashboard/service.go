package dashboard

import (
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/mood"
	"github.com/edubridge/edubridge/core/study"
	"github.com/edubridge/edubridge/core/user"
)

const (
	recentMoodLimit = 7
	recentPlanLimit = 10
)

// Data is the role-specific dashboard payload. Only the slice matching the
// role is populated.
type Data struct {
	Role        user.Role
	RecentMoods []mood.Entry
	Plans       []study.Plan
	Students    []user.User
	Children    []user.User
	Users       []user.User
}

type Service struct {
	usrSvc   *user.Service
	moodSvc  *mood.Service
	studySvc *study.Service
}

func NewService(usrSvc *user.Service, moodSvc *mood.Service, studySvc *study.Service) *Service {
	return &Service{usrSvc: usrSvc, moodSvc: moodSvc, studySvc: studySvc}
}

// Assemble fans out to the queries matching the user's role. It is strictly
// read-only. An unrecognized role comes back as user.ErrUnknownRole; the
// caller is expected to destroy the session rather than render anything.
func (svc *Service) Assemble(usr user.User) (Data, error) {
	data := Data{Role: usr.Role}

	switch usr.Role {
	case user.RoleStudent:
		moods, err := svc.moodSvc.ListRecent(usr.ID, recentMoodLimit)
		if err != nil {
			return Data{}, errors.Wrap(err, "listing recent moods")
		}
		plans, err := svc.studySvc.ListByOwner(usr.ID, recentPlanLimit)
		if err != nil {
			return Data{}, errors.Wrap(err, "listing study plans")
		}
		data.RecentMoods = moods
		data.Plans = plans

	case user.RoleTeacher:
		students, err := svc.usrSvc.FilterByRole(user.RoleStudent)
		if err != nil {
			return Data{}, errors.Wrap(err, "listing students")
		}
		data.Students = students

	case user.RoleParent:
		// No parent-child link exists in the data model, so parents currently
		// see the full student roster. Known limitation.
		children, err := svc.usrSvc.FilterByRole(user.RoleStudent)
		if err != nil {
			return Data{}, errors.Wrap(err, "listing children")
		}
		data.Children = children

	case user.RoleAdmin:
		users, err := svc.usrSvc.QueryAll()
		if err != nil {
			return Data{}, errors.Wrap(err, "listing users")
		}
		data.Users = users

	default:
		return Data{}, user.ErrUnknownRole
	}
	return data, nil
}
