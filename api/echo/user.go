package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/session"
	"github.com/edubridge/edubridge/core/user"
)

func (s *Server) index(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "index", s.newTemplateData(ctx))
}

func (s *Server) registerForm(ctx echo.Context) error {
	td := s.newTemplateData(ctx)
	td.Form = user.NewUser{}
	return ctx.Render(http.StatusOK, "register", td)
}

func (s *Server) register(ctx echo.Context) error {
	var nu user.NewUser
	if err := ctx.Bind(&nu); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	if err := nu.Validate(s.deps.Validate, s.deps.UserSvc); err != nil {
		if isDuplicateEmail(err) {
			s.addFlash(ctx, flashDanger, "Email already registered.")
			return ctx.Redirect(http.StatusSeeOther, "/register")
		}
		return s.renderFormErrors(ctx, "register", nu, nil, err)
	}

	if _, err := s.deps.UserSvc.Register(nu); err != nil {
		if isDuplicateEmail(err) {
			s.addFlash(ctx, flashDanger, "Email already registered.")
			return ctx.Redirect(http.StatusSeeOther, "/register")
		}
		return errors.Wrap(err, "registering user")
	}

	s.addFlash(ctx, flashSuccess, "Account created. Please log in.")
	return ctx.Redirect(http.StatusSeeOther, "/login")
}

// isDuplicateEmail unwraps the uniqueness failure from either the validation
// layer or the repository's unique index.
func isDuplicateEmail(err error) bool {
	if verr, ok := errors.Cause(err).(*core.ValidationError); ok {
		err = verr.Err
	}
	return errors.Cause(err) == user.ErrEmailExists
}

func (s *Server) loginForm(ctx echo.Context) error {
	td := s.newTemplateData(ctx)
	td.Form = user.Credentials{}
	return ctx.Render(http.StatusOK, "login", td)
}

func (s *Server) login(ctx echo.Context) error {
	var creds user.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := creds.Validate(s.deps.Validate); err != nil {
		return s.renderFormErrors(ctx, "login", creds, nil, err)
	}

	usr, sess, err := s.deps.SessionMgr.Authenticate(creds.Email, creds.Password)
	if err != nil {
		if errors.Cause(err) == session.ErrAuthenticationFailed {
			s.addFlash(ctx, flashDanger, "Invalid email or password.")
			return ctx.Redirect(http.StatusSeeOther, "/login")
		}
		return errors.Wrap(err, "authenticating")
	}

	if err = s.establishSession(ctx, sess.Token, "Welcome back, "+usr.Name+"!"); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) logout(ctx echo.Context) error {
	if token := s.sessionToken(ctx); token != "" {
		if err := s.deps.SessionMgr.Destroy(token); err != nil {
			return errors.Wrap(err, "destroying session")
		}
	}
	sess := s.webSession(ctx)
	delete(sess.Values, sessionTokenKey)
	sess.AddFlash(flash{Level: flashInfo, Message: "Logged out."})
	if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
		return errors.Wrap(err, "saving session cookie")
	}
	return ctx.Redirect(http.StatusSeeOther, "/")
}
