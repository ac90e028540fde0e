package echoapi

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edubridge/edubridge/core/user"
)

const (
	sessionCookieName = "edubridge_session"
	sessionTokenKey   = "token"
	contextUserKey    = "user"
)

const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashDanger  = "danger"
)

type flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(flash{})
}

// webSession returns the signed cookie session; a missing or tampered cookie
// decodes to a fresh empty session.
func (s *Server) webSession(ctx echo.Context) *sessions.Session {
	sess, _ := s.store.Get(ctx.Request(), sessionCookieName)
	return sess
}

func (s *Server) sessionToken(ctx echo.Context) string {
	token, _ := s.webSession(ctx).Values[sessionTokenKey].(string)
	return token
}

// resolveUser dereferences the cookie's session token to the live user
// record. Anonymous, expired and destroyed sessions all come back as !ok.
func (s *Server) resolveUser(ctx echo.Context) (user.User, bool) {
	usr, err := s.deps.SessionMgr.Resolve(s.sessionToken(ctx))
	if err != nil {
		return user.User{}, false
	}
	return usr, true
}

// requireSession redirects anonymous requests to the login page.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		usr, ok := s.resolveUser(ctx)
		if !ok {
			return ctx.Redirect(http.StatusSeeOther, "/login")
		}
		ctx.Set(contextUserKey, usr)
		return next(ctx)
	}
}

// redirectAuthenticated sends signed-in users to their dashboard instead of
// the public pages.
func (s *Server) redirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := s.resolveUser(ctx); ok {
			return ctx.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return next(ctx)
	}
}

// requireRole rejects the request outright unless the user is signed in with
// exactly the required role.
func (s *Server) requireRole(next echo.HandlerFunc, role user.Role) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		usr, ok := s.resolveUser(ctx)
		if !ok || usr.Role != role {
			return errHTTPForbidden
		}
		ctx.Set(contextUserKey, usr)
		return next(ctx)
	}
}

func currentUser(ctx echo.Context) (user.User, bool) {
	usr, ok := ctx.Get(contextUserKey).(user.User)
	return usr, ok
}

func (s *Server) addFlash(ctx echo.Context, level, msg string) {
	sess := s.webSession(ctx)
	sess.AddFlash(flash{Level: level, Message: msg})
	if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
		s.deps.Logger.Warn("saving flash", errors.Wrap(err, "saving flash"))
	}
}

// popFlashes drains pending flash messages for rendering.
func (s *Server) popFlashes(ctx echo.Context) []flash {
	sess := s.webSession(ctx)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(ctx.Request(), ctx.Response())

	flashes := make([]flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}

// establishSession stores the server-issued token in the cookie.
func (s *Server) establishSession(ctx echo.Context, token, welcome string) error {
	sess := s.webSession(ctx)
	sess.Values[sessionTokenKey] = token
	sess.AddFlash(flash{Level: flashSuccess, Message: welcome})
	return errors.Wrap(sess.Save(ctx.Request(), ctx.Response()), "saving session cookie")
}

// forceLogout destroys the server-side session and clears the cookie token.
func (s *Server) forceLogout(ctx echo.Context, level, msg string) error {
	if token := s.sessionToken(ctx); token != "" {
		if err := s.deps.SessionMgr.Destroy(token); err != nil {
			return errors.Wrap(err, "destroying session")
		}
	}
	sess := s.webSession(ctx)
	delete(sess.Values, sessionTokenKey)
	sess.AddFlash(flash{Level: level, Message: msg})
	if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
		return errors.Wrap(err, "saving session cookie")
	}
	return ctx.Redirect(http.StatusSeeOther, "/login")
}
