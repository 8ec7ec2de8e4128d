package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/user/domain"
	"github.com/eduverse/eduverse/internal/user/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			institution_id INTEGER NOT NULL,
			role TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			password TEXT,
			linked_student_id INTEGER,
			created_at DATETIME,
			updated_at DATETIME
		)`).Error)

	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func strptr(s string) *string { return &s }

func TestCreateUserValidation(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "nope", Role: "teacher", Name: "A",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInstitution)

	_, err = svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "1", Role: "principal", Name: "A",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "1", Role: "teacher", Name: "  ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "1", Role: "teacher", Name: "A", Email: strptr("not-an-email"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestCreateUserEmailConflict(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "1", Role: "teacher", Name: "Asha", Email: strptr("asha@example.com"),
	})
	require.NoError(t, err)

	// Same email in the same institution conflicts, case-insensitively.
	_, err = svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "1", Role: "admin", Name: "Asha Again", Email: strptr("ASHA@example.com"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	// The same email is fine in a different institution.
	_, err = svc.Create(ctx, domain.CreateUserRequest{
		InstitutionID: "2", Role: "teacher", Name: "Asha Elsewhere", Email: strptr("asha@example.com"),
	})
	assert.NoError(t, err)
}

func TestListUsersFiltersByRole(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	for _, u := range []struct{ role, name string }{
		{"teacher", "T1"},
		{"teacher", "T2"},
		{"student", "S1"},
	} {
		_, err := svc.Create(ctx, domain.CreateUserRequest{
			InstitutionID: "1", Role: u.role, Name: u.name,
		})
		require.NoError(t, err)
	}

	teachers, err := svc.List(ctx, domain.ListUserRequest{InstitutionID: "1", Role: "teacher"})
	require.NoError(t, err)
	assert.Len(t, teachers, 2)

	all, err := svc.List(ctx, domain.ListUserRequest{InstitutionID: "1"})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
