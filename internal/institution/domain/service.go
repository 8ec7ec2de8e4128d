package domain

import (
	"context"
	"errors"
)

type CreateInstitutionRequest struct {
	Name         string  `json:"name"`
	Subdomain    *string `json:"subdomain,omitempty"`
	Plan         string  `json:"plan,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

type Service interface {
	Create(context.Context, CreateInstitutionRequest) (Institution, error)
	List(context.Context) ([]Institution, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidPlan    = errors.New("invalid_plan")
	ErrSubdomainTaken = errors.New("subdomain_taken")
	ErrNotFound       = errors.New("not_found")
)
