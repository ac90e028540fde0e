package main

import (
	"log"
	"os"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/user"
	"github.com/edubridge/edubridge/storage/database"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	usrSvc := user.NewService(database.NewUserRepository(db))

	// start CLI
	cli := commandLine{
		db:       db,
		usrSvc:   usrSvc,
		sessRepo: database.NewSessionRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
