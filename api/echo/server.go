package echoapi

import (
	"context"
	"net/http"
	"os"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/dashboard"
	"github.com/edubridge/edubridge/core/mood"
	"github.com/edubridge/edubridge/core/session"
	"github.com/edubridge/edubridge/core/study"
	"github.com/edubridge/edubridge/core/user"
)

type (
	ServerDeps struct {
		Conf         *core.Config
		Logger       core.Logger
		UserSvc      *user.Service
		SessionMgr   *session.Manager
		MoodSvc      *mood.Service
		StudySvc     *study.Service
		DashboardSvc *dashboard.Service
		Validate     *validator.Validate
		Translator   ut.Translator

		// Shutdown receives a signal when an unrecoverable error asks the
		// process to stop.
		Shutdown chan<- os.Signal
	}

	Server struct {
		deps  ServerDeps
		app   *echo.Echo
		store *sessions.CookieStore
	}

	// route pairs a path with its guard. A non-empty role means the role
	// gate applies (strict equality; admin does not satisfy teacher); authed
	// alone means any signed-in user; anon marks the public pages that
	// bounce signed-in users to their dashboard.
	route struct {
		method  string
		path    string
		handler echo.HandlerFunc
		authed  bool
		anon    bool
		role    user.Role
	}
)

func NewServer(deps ServerDeps) *Server {
	store := sessions.NewCookieStore([]byte(deps.Conf.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(deps.Conf.SessionExpirationDelta / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		deps:  deps,
		app:   echo.New(),
		store: store,
	}
	s.setup()
	return s
}

func (s *Server) routes() []route {
	return []route{
		{method: http.MethodGet, path: "/", handler: s.index, anon: true},
		{method: http.MethodGet, path: "/register", handler: s.registerForm, anon: true},
		{method: http.MethodPost, path: "/register", handler: s.register, anon: true},
		{method: http.MethodGet, path: "/login", handler: s.loginForm, anon: true},
		{method: http.MethodPost, path: "/login", handler: s.login, anon: true},
		{method: http.MethodGet, path: "/logout", handler: s.logout, authed: true},
		{method: http.MethodGet, path: "/dashboard", handler: s.dashboard, authed: true},
		{method: http.MethodGet, path: "/mood", handler: s.moodPage, authed: true},
		{method: http.MethodPost, path: "/mood", handler: s.moodCheckIn, authed: true},
		{method: http.MethodGet, path: "/study-plan", handler: s.studyPlanPage, authed: true},
		{method: http.MethodPost, path: "/study-plan", handler: s.studyPlanCreate, authed: true},
		{method: http.MethodPost, path: "/study-plan/:id/toggle", handler: s.studyPlanToggle, authed: true},
		{method: http.MethodGet, path: "/admin-only", handler: s.adminPanel, authed: true, role: user.RoleAdmin},
	}
}

func (s *Server) setup() {
	debug := s.deps.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.Conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || s.deps.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = s.newHTTPErrorHandler()
	s.app.Debug = debug
	s.app.Renderer = newRenderer()

	// a single dispatcher applies the guards so no handler body ever runs
	// ahead of its session or role check
	for _, rt := range s.routes() {
		h := rt.handler
		switch {
		case rt.role != "":
			h = s.requireRole(h, rt.role)
		case rt.authed:
			h = s.requireSession(h)
		case rt.anon:
			h = s.redirectAuthenticated(h)
		}
		s.app.Add(rt.method, rt.path, h)
	}
}

func (s *Server) Start() error {
	return s.app.Start(s.deps.Conf.Server.Addr())
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
