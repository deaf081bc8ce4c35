//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"

	"userdesk/internal/database"
	"userdesk/internal/model"
	"userdesk/internal/store"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var testDB database.DB

func TestMain(m *testing.M) {
	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("userdesk"),
		postgres.WithUsername("userdesk"),
		postgres.WithPassword("userdesk"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}
	if err := database.RunMigrations(url); err != nil {
		panic(err)
	}
	testDB, err = database.NewPgxPool(ctx, url)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	testDB.Close()
	_ = testcontainers.TerminateContainer(ctr)
	os.Exit(code)
}

func reset(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(), `TRUNCATE user_profiles, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func addProfile(t *testing.T, userID int) {
	t.Helper()
	_, err := testDB.Exec(context.Background(),
		`INSERT INTO user_profiles (user_id, nickname) VALUES ($1, 'nick')`, userID)
	require.NoError(t, err)
}

func countProfiles(t *testing.T, userID int) int {
	t.Helper()
	ps, err := store.NewUserStore(testDB).ProfilesByUser(context.Background(), userID)
	require.NoError(t, err)
	return len(ps)
}

func TestDeleteWithProfileTouchesOnlyTarget(t *testing.T) {
	reset(t)
	ctx := context.Background()
	s := store.NewUserStore(testDB)

	alice, err := s.Insert(ctx, &model.User{Name: "alice", Password: "x"})
	require.NoError(t, err)
	bob, err := s.Insert(ctx, &model.User{Name: "bob", Password: "x"})
	require.NoError(t, err)
	addProfile(t, alice.ID)
	addProfile(t, alice.ID)
	addProfile(t, bob.ID)

	n, err := s.DeleteWithProfile(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.Equal(t, 0, countProfiles(t, alice.ID))
	require.Equal(t, 1, countProfiles(t, bob.ID))
	_, err = s.FindByID(ctx, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.FindByID(ctx, bob.ID)
	require.NoError(t, err)
}

func TestInsertDuplicateName(t *testing.T) {
	reset(t)
	ctx := context.Background()
	s := store.NewUserStore(testDB)

	_, err := s.Insert(ctx, &model.User{Name: "alice", Password: "x"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, &model.User{Name: "alice", Password: "y"})
	require.ErrorIs(t, err, store.ErrDuplicateName)
}

func TestQueryCountMatchesFilter(t *testing.T) {
	reset(t)
	ctx := context.Background()
	s := store.NewUserStore(testDB)

	for _, name := range []string{"alice", "malice", "bob", "50%off", "500"} {
		_, err := s.Insert(ctx, &model.User{Name: name, Password: "x"})
		require.NoError(t, err)
	}

	p := model.NewPager(1, 20)
	users, err := s.Query(ctx, "lic", p)
	require.NoError(t, err)
	n, err := s.CountMatching(ctx, "lic")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, users, n)

	users, err = s.Query(ctx, "0%", p)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "50%off", users[0].Name)

	users, err = s.Query(ctx, "", model.NewPager(2, 2))
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "bob", users[0].Name)
}
