package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("user.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	institutionID, err := snowflake.ParseString(strings.TrimSpace(req.InstitutionID))
	if err != nil || institutionID == 0 {
		return domain.User{}, domain.ErrInvalidInstitution
	}

	role := domain.Role(strings.TrimSpace(req.Role))
	if !role.Valid() {
		return domain.User{}, domain.ErrInvalidRole
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.User{}, domain.ErrInvalidName
	}

	var email *string
	if req.Email != nil {
		trimmed := strings.ToLower(strings.TrimSpace(*req.Email))
		if trimmed != "" {
			if !strings.Contains(trimmed, "@") {
				return domain.User{}, domain.ErrInvalidEmail
			}
			count, err := s.repo.CountByEmail(ctx, s.db, institutionID, trimmed)
			if err != nil {
				return domain.User{}, err
			}
			if count > 0 {
				return domain.User{}, domain.ErrEmailExists
			}
			email = &trimmed
		}
	}

	var linkedStudentID *snowflake.ID
	if req.LinkedStudentID != nil && strings.TrimSpace(*req.LinkedStudentID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.LinkedStudentID))
		if err != nil {
			return domain.User{}, domain.ErrInvalidStudent
		}
		linkedStudentID = &parsed
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:              s.genID.Generate(),
		InstitutionID:   institutionID,
		Role:            role,
		Name:            name,
		Email:           email,
		Phone:           req.Phone,
		Password:        req.Password,
		LinkedStudentID: linkedStudentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (s *Service) List(ctx context.Context, req domain.ListUserRequest) ([]domain.User, error) {
	items, err := s.repo.List(ctx, s.db, req)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		users = append(users, *item)
	}
	return users, nil
}
