package domain

import (
	"context"
	"errors"
)

type CreateBatchRequest struct {
	InstitutionID string   `json:"institution_id"`
	Name          string   `json:"name"`
	Subject       *string  `json:"subject,omitempty"`
	TeacherIDs    []string `json:"teacher_ids,omitempty"`
	Schedule      *string  `json:"schedule,omitempty"`
}

type ListBatchRequest struct {
	InstitutionID string
}

type Service interface {
	Create(context.Context, CreateBatchRequest) (Batch, error)
	List(context.Context, ListBatchRequest) ([]Batch, error)
}

var (
	ErrInvalidInstitution = errors.New("invalid_institution_id")
	ErrInvalidName        = errors.New("invalid_name")
)
