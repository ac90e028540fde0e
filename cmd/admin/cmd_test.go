package main

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/edubridge/core/user"
	inmemdb "github.com/edubridge/edubridge/storage/database/inmem"
)

func setup(t *testing.T) (*commandLine, *inmemdb.DB) {
	t.Helper()

	db := inmemdb.NewDB()
	cli := &commandLine{
		usrSvc:   user.NewService(inmemdb.NewUserRepository(db)),
		sessRepo: inmemdb.NewSessionRepository(db),
	}
	return cli, db
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(t)

	migrateCalled := false
	migrateFunc = func(_ *sqlx.DB) error {
		migrateCalled = true
		return nil
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "migrate", args: []string{"migrate"}},
		{name: "adduser: no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "adduser: name but no email", args: []string{"adduser", "-name", "Root"}, wantErr: errHelp},
		{name: "adduser: no password", args: []string{"adduser", "-name", "Root", "-email", "root@test.cd"}, wantErr: errHelp},
		{name: "adduser", args: []string{"adduser", "-name", "Root", "-email", "root@test.cd"}, pwd: "secret1"},
		{name: "adduser: duplicate email", args: []string{"adduser", "-name", "Root2", "-email", "ROOT@test.cd"}, pwd: "secret1", wantErr: user.ErrEmailExists},
		{name: "adduser: bad role", args: []string{"adduser", "-name", "Root3", "-email", "root3@test.cd", "-role", "superuser"}, pwd: "secret1", wantErr: user.ErrUnknownRole},
		{name: "purgesessions", args: []string{"purgesessions"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.True(t, migrateCalled)

	usr, err := cli.usrSvc.GetByEmail("root@test.cd")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, usr.Role)
	assert.NoError(t, usr.CheckPassword("secret1"))
}
