package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/user"
	inmemdb "github.com/edubridge/edubridge/storage/database/inmem"
	testutil "github.com/edubridge/edubridge/tests"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	t.Helper()

	db := inmemdb.NewDB()
	repo := inmemdb.NewUserRepository(db)
	return user.NewService(repo), repo
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    user.Role
		wantErr bool
	}{
		{in: "student", want: user.RoleStudent},
		{in: " Teacher ", want: user.RoleTeacher},
		{in: "PARENT", want: user.RoleParent},
		{in: "admin", want: user.RoleAdmin},
		{in: "superuser", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := user.ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUser_passwords(t *testing.T) {
	var usr user.User
	require.NoError(t, usr.SetPassword("secret1"))

	assert.NotContains(t, string(usr.PasswordHash), "secret1")
	assert.NoError(t, usr.CheckPassword("secret1"))
	assert.Error(t, usr.CheckPassword("Secret1"))
}

func TestService_Register(t *testing.T) {
	svc, _ := setup(t)

	t.Run("ok", func(t *testing.T) {
		usr, err := svc.Register(user.NewUser{
			Name: "Awa", Email: "awa@test.cd", Password: "secret1", PasswordConfirm: "secret1", Role: "student",
		})
		require.NoError(t, err)
		assert.NotZero(t, usr.ID)
		assert.Equal(t, user.RoleStudent, usr.Role)
		assert.NoError(t, usr.CheckPassword("secret1"))
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Register(user.NewUser{
			Name: "Awa", Email: "awa2@test.cd", Password: "secret1", PasswordConfirm: "secret1", Role: "superuser",
		})
		assert.ErrorIs(t, err, user.ErrUnknownRole)
	})
}

func TestService_CheckEmailUniqueness(t *testing.T) {
	svc, repo := setup(t)

	testutil.CreateUser(t, repo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	assert.NoError(t, svc.CheckEmailUniqueness("free@test.cd"))

	err := svc.CheckEmailUniqueness("AWA@TEST.CD")
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrEmailExists)

	var verr *core.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "email", verr.Fields[0].Field)
}

func TestNewUser_Validate(t *testing.T) {
	svc, repo := setup(t)
	validate, _ := testutil.NewValidator(t)

	testutil.CreateUser(t, repo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	t.Run("ok", func(t *testing.T) {
		nu := user.NewUser{
			Name: " Ben ", Email: " BEN@Test.CD ", Password: "secret1", PasswordConfirm: "secret1", Role: "student",
		}
		require.NoError(t, nu.Validate(validate, svc))
		assert.Equal(t, "Ben", nu.Name)
		assert.Equal(t, "ben@test.cd", nu.Email)
	})

	t.Run("duplicate email, any case", func(t *testing.T) {
		nu := user.NewUser{
			Name: "Imposter", Email: "AWA@test.cd", Password: "secret1", PasswordConfirm: "secret1", Role: "student",
		}
		assert.ErrorIs(t, nu.Validate(validate, svc), user.ErrEmailExists)
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		nu := user.NewUser{
			Name: "Ben", Email: "ben2@test.cd", Password: "secret1", PasswordConfirm: "secret2", Role: "student",
		}
		assert.Error(t, nu.Validate(validate, svc))
	})

	t.Run("invalid role", func(t *testing.T) {
		nu := user.NewUser{
			Name: "Ben", Email: "ben3@test.cd", Password: "secret1", PasswordConfirm: "secret1", Role: "superuser",
		}
		assert.Error(t, nu.Validate(validate, svc))
	})
}
