package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/study"
)

func (s *Server) studyPlanPage(ctx echo.Context) error {
	usr, _ := currentUser(ctx)

	plans, err := s.deps.StudySvc.ListByOwner(usr.ID, 0)
	if err != nil {
		return errors.Wrap(err, "listing study plans")
	}

	td := s.newTemplateData(ctx)
	td.Form = study.NewPlan{}
	td.Data = map[string]interface{}{"Plans": plans}
	return ctx.Render(http.StatusOK, "study_plan", td)
}

func (s *Server) studyPlanCreate(ctx echo.Context) error {
	usr, _ := currentUser(ctx)

	var np study.NewPlan
	if err := ctx.Bind(&np); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := np.Validate(s.deps.Validate); err != nil {
		plans, lerr := s.deps.StudySvc.ListByOwner(usr.ID, 0)
		if lerr != nil {
			return errors.Wrap(lerr, "listing study plans")
		}
		data := map[string]interface{}{"Plans": plans}
		return s.renderFormErrors(ctx, "study_plan", np, data, err)
	}

	if _, err := s.deps.StudySvc.Create(usr, np); err != nil {
		return errors.Wrap(err, "creating study plan")
	}

	s.addFlash(ctx, flashSuccess, "Study plan saved.")
	return ctx.Redirect(http.StatusSeeOther, "/study-plan")
}

func (s *Server) studyPlanToggle(ctx echo.Context) error {
	usr, _ := currentUser(ctx)

	planID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}

	if _, err = s.deps.StudySvc.ToggleDone(usr, planID); err != nil {
		if errors.Cause(err) == core.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		}
		return errors.Wrap(err, "toggling study plan")
	}

	return ctx.Redirect(http.StatusSeeOther, "/study-plan")
}
