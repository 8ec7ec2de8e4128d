package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/batch/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("batch.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBatchRequest) (domain.Batch, error) {
	institutionID, err := snowflake.ParseString(strings.TrimSpace(req.InstitutionID))
	if err != nil || institutionID == 0 {
		return domain.Batch{}, domain.ErrInvalidInstitution
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Batch{}, domain.ErrInvalidName
	}

	teacherIDs := req.TeacherIDs
	if teacherIDs == nil {
		teacherIDs = []string{}
	}

	now := time.Now().UTC()
	batch := domain.Batch{
		ID:            s.genID.Generate(),
		InstitutionID: institutionID,
		Name:          name,
		Subject:       req.Subject,
		TeacherIDs:    datatypes.NewJSONSlice(teacherIDs),
		Schedule:      req.Schedule,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &batch); err != nil {
		return domain.Batch{}, err
	}

	return batch, nil
}

func (s *Service) List(ctx context.Context, req domain.ListBatchRequest) ([]domain.Batch, error) {
	var institutionID snowflake.ID
	if id := strings.TrimSpace(req.InstitutionID); id != "" {
		parsed, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidInstitution
		}
		institutionID = parsed
	}

	items, err := s.repo.List(ctx, s.db, institutionID)
	if err != nil {
		return nil, err
	}

	batches := make([]domain.Batch, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		batches = append(batches, *item)
	}
	return batches, nil
}
