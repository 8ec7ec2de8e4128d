package domain

import (
	"context"
	"errors"
)

type CreateUserRequest struct {
	InstitutionID   string  `json:"institution_id"`
	Role            string  `json:"role"`
	Name            string  `json:"name"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Password        *string `json:"password,omitempty"`
	LinkedStudentID *string `json:"linked_student_id,omitempty"`
}

type ListUserRequest struct {
	InstitutionID string
	Role          string
}

type Service interface {
	Create(context.Context, CreateUserRequest) (User, error)
	List(context.Context, ListUserRequest) ([]User, error)
}

var (
	ErrInvalidInstitution = errors.New("invalid_institution_id")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrInvalidStudent     = errors.New("invalid_linked_student_id")
	ErrEmailExists        = errors.New("email_exists")
	ErrNotFound           = errors.New("not_found")
)
