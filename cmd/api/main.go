package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	echoapi "github.com/edubridge/edubridge/api/echo"
	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/dashboard"
	"github.com/edubridge/edubridge/core/mood"
	"github.com/edubridge/edubridge/core/session"
	"github.com/edubridge/edubridge/core/study"
	"github.com/edubridge/edubridge/core/user"
	logsvc "github.com/edubridge/edubridge/services/logger"
	"github.com/edubridge/edubridge/storage/database"
)

func main() {
	std := stdlog.New(os.Stdout, "API : ", stdlog.LstdFlags|stdlog.Lmicroseconds|stdlog.Lshortfile)

	if err := run(std); err != nil {
		std.Fatalf("main: error: %+v", err)
	}
}

func run(std *stdlog.Logger) error {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)

	// database
	if err := database.CreateIfNotExist(conf); err != nil {
		return errors.Wrap(err, "creating database")
	}
	db, err := database.Open(conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer db.Close()
	if err = database.Migrate(db); err != nil {
		return errors.Wrap(err, "migrating database")
	}

	// validation
	validate := validator.New()
	translator, err := newTranslator()
	if err != nil {
		return err
	}
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	mood.InitValidators(validate, translator)

	// services
	usrSvc := user.NewService(database.NewUserRepository(db))
	sessionMgr := session.NewManager(database.NewSessionRepository(db), usrSvc, conf)
	moodSvc := mood.NewService(database.NewMoodRepository(db))
	studySvc := study.NewService(database.NewStudyRepository(db))
	dashboardSvc := dashboard.NewService(usrSvc, moodSvc, studySvc)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:         conf,
		Logger:       logger,
		UserSvc:      usrSvc,
		SessionMgr:   sessionMgr,
		MoodSvc:      moodSvc,
		StudySvc:     studySvc,
		DashboardSvc: dashboardSvc,
		Validate:     validate,
		Translator:   translator,
		Shutdown:     shutdown,
	})

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("main: server listening on " + conf.Server.Addr())
		serverErrors <- server.Start()
	}()

	select {
	case err = <-serverErrors:
		return errors.Wrap(err, "server error")

	case sig := <-shutdown:
		logger.Info("main: shutting down", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err = server.Stop(ctx); err != nil {
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}
	return nil
}

func newTranslator() (ut.Translator, error) {
	locale := en.New()
	translator, ok := ut.New(locale, locale).GetTranslator(locale.Locale())
	if !ok {
		return nil, errors.Errorf("translator not found for locale %q", locale.Locale())
	}
	return translator, nil
}
