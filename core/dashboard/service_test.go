package dashboard_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/edubridge/core/dashboard"
	"github.com/edubridge/edubridge/core/mood"
	"github.com/edubridge/edubridge/core/study"
	"github.com/edubridge/edubridge/core/user"
	inmemdb "github.com/edubridge/edubridge/storage/database/inmem"
	testutil "github.com/edubridge/edubridge/tests"
)

type fixtures struct {
	svc       *dashboard.Service
	usrRepo   user.Repository
	moodRepo  mood.Repository
	studyRepo study.Repository
}

func setup(t *testing.T) fixtures {
	t.Helper()

	db := inmemdb.NewDB()
	usrRepo := inmemdb.NewUserRepository(db)
	moodRepo := inmemdb.NewMoodRepository(db)
	studyRepo := inmemdb.NewStudyRepository(db)

	usrSvc := user.NewService(usrRepo)
	return fixtures{
		svc:       dashboard.NewService(usrSvc, mood.NewService(moodRepo), study.NewService(studyRepo)),
		usrRepo:   usrRepo,
		moodRepo:  moodRepo,
		studyRepo: studyRepo,
	}
}

func TestService_Assemble_student(t *testing.T) {
	fx := setup(t)

	usr := testutil.CreateUser(t, fx.usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)

	now := time.Now().UTC()
	for i := 0; i < 9; i++ {
		testutil.CreateMoodEntry(t, fx.moodRepo, usr, mood.MoodOkay, fmt.Sprintf("mood %d", i), now.Add(time.Duration(i)*time.Minute))
	}
	for i := 0; i < 12; i++ {
		testutil.CreateStudyPlan(t, fx.studyRepo, usr, "Math", fmt.Sprintf("topic %d", i), false, now.Add(time.Duration(i)*time.Minute))
	}

	data, err := fx.svc.Assemble(usr)
	require.NoError(t, err)

	assert.Equal(t, user.RoleStudent, data.Role)

	// moods are capped at 7, most recent first
	require.Len(t, data.RecentMoods, 7)
	assert.Equal(t, "mood 8", data.RecentMoods[0].Note)
	assert.Equal(t, "mood 2", data.RecentMoods[6].Note)

	// plans are capped at 10, most recent first
	require.Len(t, data.Plans, 10)
	assert.Equal(t, "topic 11", data.Plans[0].Topic)
	assert.Equal(t, "topic 2", data.Plans[9].Topic)

	assert.Empty(t, data.Students)
	assert.Empty(t, data.Users)
}

func TestService_Assemble_teacherAndParent(t *testing.T) {
	fx := setup(t)

	teacher := testutil.CreateUser(t, fx.usrRepo, "Mr K", "k@test.cd", "secret1", user.RoleTeacher)
	parent := testutil.CreateUser(t, fx.usrRepo, "Mrs M", "m@test.cd", "secret1", user.RoleParent)
	s1 := testutil.CreateUser(t, fx.usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)
	s2 := testutil.CreateUser(t, fx.usrRepo, "Ben", "ben@test.cd", "secret1", user.RoleStudent)

	data, err := fx.svc.Assemble(teacher)
	require.NoError(t, err)
	assert.Equal(t, user.RoleTeacher, data.Role)
	require.Len(t, data.Students, 2)
	assert.ElementsMatch(t, []int{s1.ID, s2.ID}, []int{data.Students[0].ID, data.Students[1].ID})
	assert.Empty(t, data.RecentMoods)

	// parents see the whole student roster for now
	data, err = fx.svc.Assemble(parent)
	require.NoError(t, err)
	assert.Equal(t, user.RoleParent, data.Role)
	assert.Len(t, data.Children, 2)
}

func TestService_Assemble_admin(t *testing.T) {
	fx := setup(t)

	admin := testutil.CreateUser(t, fx.usrRepo, "Root", "root@test.cd", "secret1", user.RoleAdmin)
	testutil.CreateUser(t, fx.usrRepo, "Awa", "awa@test.cd", "secret1", user.RoleStudent)
	testutil.CreateUser(t, fx.usrRepo, "Mr K", "k@test.cd", "secret1", user.RoleTeacher)

	data, err := fx.svc.Assemble(admin)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, data.Role)
	assert.Len(t, data.Users, 3)
}

func TestService_Assemble_unknownRole(t *testing.T) {
	fx := setup(t)

	usr := testutil.CreateUser(t, fx.usrRepo, "Ghost", "ghost@test.cd", "secret1", user.Role("superuser"))

	_, err := fx.svc.Assemble(usr)
	assert.ErrorIs(t, err, user.ErrUnknownRole)
}
