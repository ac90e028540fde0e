package main

import (
	"fmt"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/user"
)

// addUser creates a user account, defaulting to the admin role.
func (cli *commandLine) addUser(name, email, pwd, role string) error {
	nu := user.NewUser{
		Name:            core.CleanString(name),
		Email:           core.CleanString(email, true /* lower */),
		Password:        pwd,
		PasswordConfirm: pwd,
		Role:            core.CleanString(role, true /* lower */),
	}

	if err := cli.usrSvc.CheckEmailUniqueness(nu.Email); err != nil {
		return err
	}
	usr, err := cli.usrSvc.Register(nu)
	if err != nil {
		return err
	}
	fmt.Printf("created %s user %s <%s>\n", usr.Role, usr.Name, usr.Email)
	return nil
}

func (cli *commandLine) purgeSessions() error {
	if err := cli.sessRepo.DeleteExpiredSessions(); err != nil {
		return err
	}
	fmt.Println("expired sessions purged")
	return nil
}
