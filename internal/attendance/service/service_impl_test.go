package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/attendance/domain"
	"github.com/eduverse/eduverse/internal/attendance/repository"
	notificationrepository "github.com/eduverse/eduverse/internal/notification/repository"
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
		CREATE TABLE attendances (
			id INTEGER PRIMARY KEY,
			institution_id INTEGER NOT NULL,
			student_id INTEGER NOT NULL,
			batch_id INTEGER,
			date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'present',
			mode TEXT NOT NULL DEFAULT 'manual',
			gps_lat REAL,
			gps_lng REAL,
			notes TEXT,
			created_at DATETIME
		)`).Error)
	require.NoError(t, db.Exec(`
		CREATE TABLE notifications (
			id INTEGER PRIMARY KEY,
			institution_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			channel TEXT NOT NULL,
			template TEXT NOT NULL,
			payload TEXT NOT NULL DEFAULT '{}',
			status TEXT NOT NULL DEFAULT 'queued',
			created_at DATETIME
		)`).Error)

	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:            db,
		Log:           zap.NewNop(),
		GenID:         node,
		Repo:          repository.Provide(),
		Notifications: notificationrepository.Provide(),
	})
}

func TestMarkValidation(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	_, err := svc.Mark(ctx, domain.MarkAttendanceRequest{
		InstitutionID: "1", StudentID: "2", Date: "not-a-date",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = svc.Mark(ctx, domain.MarkAttendanceRequest{
		InstitutionID: "1", StudentID: "2", Date: "2026-08-29", Status: "sleeping",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.Mark(ctx, domain.MarkAttendanceRequest{
		InstitutionID: "1", StudentID: "2", Date: "2026-08-29", Mode: "telepathy",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestMarkDefaultsToPresentManual(t *testing.T) {
	svc := newTestService(t, openTestDB(t))

	record, err := svc.Mark(context.Background(), domain.MarkAttendanceRequest{
		InstitutionID: "1", StudentID: "2", Date: "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPresent, record.Status)
	assert.Equal(t, domain.ModeManual, record.Mode)
}

func TestMarkAbsentEnqueuesAlert(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)

	record, err := svc.Mark(context.Background(), domain.MarkAttendanceRequest{
		InstitutionID: "1", StudentID: "2", Date: "2026-08-29", Status: "absent",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAbsent, record.Status)

	var notifications []struct {
		UserID   int64
		Channel  string
		Template string
		Status   string
	}
	require.NoError(t, db.Raw(`SELECT user_id, channel, template, status FROM notifications`).Scan(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, int64(2), notifications[0].UserID)
	assert.Equal(t, "push", notifications[0].Channel)
	assert.Equal(t, "absence_alert", notifications[0].Template)
	assert.Equal(t, "queued", notifications[0].Status)
}

func TestMarkPresentEnqueuesNothing(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.Mark(context.Background(), domain.MarkAttendanceRequest{
		InstitutionID: "1", StudentID: "2", Date: "2026-08-29", Status: "present",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM notifications`).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestTrendAggregatesByDate(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	marks := []struct {
		student string
		date    string
		status  string
	}{
		{"2", "2026-08-27", "present"},
		{"2", "2026-08-28", "absent"},
		{"2", "2026-08-28", "present"},
		{"2", "2026-08-29", "late"},
		{"3", "2026-08-29", "present"}, // other student, excluded
	}
	for _, m := range marks {
		_, err := svc.Mark(ctx, domain.MarkAttendanceRequest{
			InstitutionID: "1", StudentID: m.student, Date: m.date, Status: m.status,
		})
		require.NoError(t, err)
	}

	trend, err := svc.Trend(ctx, domain.TrendRequest{InstitutionID: "1", StudentID: "2"})
	require.NoError(t, err)
	require.Len(t, trend, 3)

	assert.Equal(t, domain.TrendPoint{Date: "2026-08-27", Present: 1, Total: 1}, trend[0])
	assert.Equal(t, domain.TrendPoint{Date: "2026-08-28", Present: 1, Total: 2}, trend[1])
	assert.Equal(t, domain.TrendPoint{Date: "2026-08-29", Present: 0, Total: 1}, trend[2])
}

func TestListFiltersByStudentAndDate(t *testing.T) {
	svc := newTestService(t, openTestDB(t))
	ctx := context.Background()

	for _, m := range []struct{ student, date string }{
		{"2", "2026-08-28"},
		{"2", "2026-08-29"},
		{"3", "2026-08-29"},
	} {
		_, err := svc.Mark(ctx, domain.MarkAttendanceRequest{
			InstitutionID: "1", StudentID: m.student, Date: m.date,
		})
		require.NoError(t, err)
	}

	records, err := svc.List(ctx, domain.ListAttendanceRequest{InstitutionID: "1", StudentID: "2"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = svc.List(ctx, domain.ListAttendanceRequest{InstitutionID: "1", Date: "2026-08-29"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = svc.List(ctx, domain.ListAttendanceRequest{InstitutionID: "1", StudentID: "2", Date: "2026-08-29"})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
