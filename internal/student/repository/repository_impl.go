package repository

import (
	"context"

	"github.com/eduverse/eduverse/internal/student/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, student *domain.Student) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO students (id, institution_id, user_id, batch_ids, admission_no, guardian_contact, meta, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		student.ID,
		student.InstitutionID,
		student.UserID,
		student.BatchIDs,
		student.AdmissionNo,
		student.GuardianContact,
		student.Meta,
		student.CreatedAt,
		student.UpdatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListStudentFilter) ([]*domain.Student, error) {
	var students []*domain.Student
	stmt := db.WithContext(ctx).Model(&domain.Student{})
	if filter.InstitutionID != 0 {
		stmt = stmt.Where("institution_id = ?", filter.InstitutionID)
	}
	err := stmt.
		Order("created_at desc, id desc").
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	if filter.BatchID == "" {
		return students, nil
	}

	// Batch membership lives in a jsonb array; filtering happens here to
	// stay portable across dialects.
	matched := make([]*domain.Student, 0, len(students))
	for _, student := range students {
		if student == nil {
			continue
		}
		for _, batchID := range student.BatchIDs {
			if batchID == filter.BatchID {
				matched = append(matched, student)
				break
			}
		}
	}
	return matched, nil
}
