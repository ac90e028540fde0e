package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/user"
)

func (s *Server) dashboard(ctx echo.Context) error {
	usr, _ := currentUser(ctx)

	data, err := s.deps.DashboardSvc.Assemble(usr)
	if err != nil {
		// A role the dashboard cannot place means the account state is
		// unusable for this session; evict it rather than loop.
		if errors.Cause(err) == user.ErrUnknownRole {
			return s.forceLogout(ctx, flashDanger, "Role not recognized.")
		}
		return errors.Wrap(err, "assembling dashboard")
	}

	td := s.newTemplateData(ctx)
	td.Data = data
	return ctx.Render(http.StatusOK, "dashboard", td)
}

func (s *Server) adminPanel(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the admin panel!")
}
