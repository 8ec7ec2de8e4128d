package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/attendance/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, attendance *domain.Attendance) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO attendances (id, institution_id, student_id, batch_id, date, status, mode, gps_lat, gps_lng, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		attendance.ID,
		attendance.InstitutionID,
		attendance.StudentID,
		attendance.BatchID,
		attendance.Date,
		attendance.Status,
		attendance.Mode,
		attendance.GPSLat,
		attendance.GPSLng,
		attendance.Notes,
		attendance.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListAttendanceFilter) ([]*domain.Attendance, error) {
	var records []*domain.Attendance
	stmt := db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("institution_id = ?", filter.InstitutionID)
	if filter.StudentID != 0 {
		stmt = stmt.Where("student_id = ?", filter.StudentID)
	}
	if filter.Date != "" {
		stmt = stmt.Where("date = ?", filter.Date)
	}
	err := stmt.
		Order("date desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) Trend(ctx context.Context, db *gorm.DB, institutionID, studentID snowflake.ID) ([]domain.TrendPoint, error) {
	var points []domain.TrendPoint
	err := db.WithContext(ctx).Raw(
		`SELECT date,
		        SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END) AS present,
		        COUNT(*) AS total
		 FROM attendances
		 WHERE institution_id = ? AND student_id = ?
		 GROUP BY date
		 ORDER BY date ASC`,
		institutionID,
		studentID,
	).Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
