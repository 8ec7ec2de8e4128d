package domain

import (
	"context"
	"errors"
)

type CreateStudentRequest struct {
	InstitutionID   string            `json:"institution_id"`
	UserID          string            `json:"user_id"`
	BatchIDs        []string          `json:"batch_ids,omitempty"`
	AdmissionNo     *string           `json:"admission_no,omitempty"`
	GuardianContact *string           `json:"guardian_contact,omitempty"`
	Meta            map[string]string `json:"meta,omitempty"`
}

type ListStudentRequest struct {
	InstitutionID string
	BatchID       string
}

type Service interface {
	Create(context.Context, CreateStudentRequest) (Student, error)
	List(context.Context, ListStudentRequest) ([]Student, error)
}

var (
	ErrInvalidInstitution = errors.New("invalid_institution_id")
	ErrInvalidUser        = errors.New("invalid_user_id")
	ErrInvalidBatch       = errors.New("invalid_batch_id")
)
