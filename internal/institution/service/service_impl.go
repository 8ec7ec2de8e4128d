package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/institution/domain"
	"github.com/eduverse/eduverse/pkg/db"
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
		log:   p.Log.Named("institution.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInstitutionRequest) (domain.Institution, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Institution{}, domain.ErrInvalidName
	}

	plan := domain.Plan(strings.TrimSpace(req.Plan))
	if plan == "" {
		plan = domain.PlanFree
	}
	if !plan.Valid() {
		return domain.Institution{}, domain.ErrInvalidPlan
	}

	var subdomain *string
	if req.Subdomain != nil {
		trimmed := strings.ToLower(strings.TrimSpace(*req.Subdomain))
		if trimmed != "" {
			subdomain = &trimmed
		}
	}

	now := time.Now().UTC()
	institution := domain.Institution{
		ID:           s.genID.Generate(),
		Name:         name,
		Subdomain:    subdomain,
		Plan:         plan,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &institution); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Institution{}, domain.ErrSubdomainTaken
		}
		return domain.Institution{}, err
	}

	return institution, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Institution, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	institutions := make([]domain.Institution, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		institutions = append(institutions, *item)
	}
	return institutions, nil
}
