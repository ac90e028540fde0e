package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/edubridge/core"
	"github.com/edubridge/edubridge/core/session"
	"github.com/edubridge/edubridge/core/user"
	inmemdb "github.com/edubridge/edubridge/storage/database/inmem"
	testutil "github.com/edubridge/edubridge/tests"
)

func setup(t *testing.T, ttl time.Duration) (*session.Manager, session.Repository, user.Repository) {
	t.Helper()

	db := inmemdb.NewDB()
	usrRepo := inmemdb.NewUserRepository(db)
	sessRepo := inmemdb.NewSessionRepository(db)
	mgr := session.NewManager(sessRepo, user.NewService(usrRepo), &core.Config{SessionExpirationDelta: ttl})
	return mgr, sessRepo, usrRepo
}

func TestManager_Authenticate(t *testing.T) {
	mgr, _, usrRepo := setup(t, time.Hour)

	usr := testutil.CreateUser(t, usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	t.Run("ok", func(t *testing.T) {
		gotUsr, sess, err := mgr.Authenticate("awa@test.cd", "secret1")
		require.NoError(t, err)
		assert.Equal(t, usr.ID, gotUsr.ID)
		assert.NotEmpty(t, sess.Token)
		assert.Equal(t, usr.ID, sess.UserID)
	})

	t.Run("email is matched case-insensitively", func(t *testing.T) {
		gotUsr, _, err := mgr.Authenticate("AWA@Test.CD", "secret1")
		require.NoError(t, err)
		assert.Equal(t, usr.ID, gotUsr.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := mgr.Authenticate("awa@test.cd", "nope")
		assert.ErrorIs(t, err, session.ErrAuthenticationFailed)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := mgr.Authenticate("ghost@test.cd", "secret1")
		assert.ErrorIs(t, err, session.ErrAuthenticationFailed)
	})
}

func TestManager_Resolve(t *testing.T) {
	mgr, _, usrRepo := setup(t, time.Hour)

	usr := testutil.CreateUser(t, usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	t.Run("empty token", func(t *testing.T) {
		_, err := mgr.Resolve("")
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := mgr.Resolve("bogus")
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("live token resolves to the live user record", func(t *testing.T) {
		_, sess, err := mgr.Authenticate(usr.Email, "secret1")
		require.NoError(t, err)

		gotUsr, err := mgr.Resolve(sess.Token)
		require.NoError(t, err)
		assert.Equal(t, usr.ID, gotUsr.ID)
		assert.Equal(t, usr.Role, gotUsr.Role)
	})
}

func TestManager_Resolve_expired(t *testing.T) {
	mgr, sessRepo, usrRepo := setup(t, -time.Minute) // sessions are born expired

	usr := testutil.CreateUser(t, usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	_, sess, err := mgr.Authenticate(usr.Email, "secret1")
	require.NoError(t, err)

	_, err = mgr.Resolve(sess.Token)
	assert.ErrorIs(t, err, session.ErrNoSession)

	// the expired session was dropped from the store
	_, err = sessRepo.GetSession(sess.Token)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManager_Destroy(t *testing.T) {
	mgr, _, usrRepo := setup(t, time.Hour)

	usr := testutil.CreateUser(t, usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	_, sess, err := mgr.Authenticate(usr.Email, "secret1")
	require.NoError(t, err)

	_, err = mgr.Resolve(sess.Token)
	require.NoError(t, err)

	require.NoError(t, mgr.Destroy(sess.Token))

	// a destroyed token fails every later resolution
	_, err = mgr.Resolve(sess.Token)
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, err = mgr.Resolve(sess.Token)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestManager_PurgeExpired(t *testing.T) {
	mgr, sessRepo, usrRepo := setup(t, -time.Minute)

	usr := testutil.CreateUser(t, usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	_, sess, err := mgr.Authenticate(usr.Email, "secret1")
	require.NoError(t, err)

	require.NoError(t, mgr.PurgeExpired())

	_, err = sessRepo.GetSession(sess.Token)
	assert.ErrorIs(t, err, session.ErrNoSession)
}
