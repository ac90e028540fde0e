package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/mood"
)

func (s *Server) moodPage(ctx echo.Context) error {
	usr, _ := currentUser(ctx)

	entries, err := s.deps.MoodSvc.ListRecent(usr.ID, 0)
	if err != nil {
		return errors.Wrap(err, "listing mood entries")
	}

	td := s.newTemplateData(ctx)
	td.Form = mood.NewEntry{}
	td.Data = map[string]interface{}{"Entries": entries, "Moods": mood.AllMoods}
	return ctx.Render(http.StatusOK, "mood", td)
}

func (s *Server) moodCheckIn(ctx echo.Context) error {
	usr, _ := currentUser(ctx)

	var ne mood.NewEntry
	if err := ctx.Bind(&ne); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := ne.Validate(s.deps.Validate); err != nil {
		entries, lerr := s.deps.MoodSvc.ListRecent(usr.ID, 0)
		if lerr != nil {
			return errors.Wrap(lerr, "listing mood entries")
		}
		data := map[string]interface{}{"Entries": entries, "Moods": mood.AllMoods}
		return s.renderFormErrors(ctx, "mood", ne, data, err)
	}

	if _, err := s.deps.MoodSvc.Create(usr, ne); err != nil {
		return errors.Wrap(err, "creating mood entry")
	}

	s.addFlash(ctx, flashSuccess, "Mood check-in saved.")
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}
