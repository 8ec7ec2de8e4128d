package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/student/domain"
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
		log:   p.Log.Named("student.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateStudentRequest) (domain.Student, error) {
	institutionID, err := snowflake.ParseString(strings.TrimSpace(req.InstitutionID))
	if err != nil || institutionID == 0 {
		return domain.Student{}, domain.ErrInvalidInstitution
	}

	userID, err := snowflake.ParseString(strings.TrimSpace(req.UserID))
	if err != nil || userID == 0 {
		return domain.Student{}, domain.ErrInvalidUser
	}

	batchIDs := make([]string, 0, len(req.BatchIDs))
	for _, raw := range req.BatchIDs {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if _, err := snowflake.ParseString(trimmed); err != nil {
			return domain.Student{}, domain.ErrInvalidBatch
		}
		batchIDs = append(batchIDs, trimmed)
	}

	meta := datatypes.JSONMap{}
	for key, value := range req.Meta {
		meta[key] = value
	}

	now := time.Now().UTC()
	student := domain.Student{
		ID:              s.genID.Generate(),
		InstitutionID:   institutionID,
		UserID:          userID,
		BatchIDs:        datatypes.NewJSONSlice(batchIDs),
		AdmissionNo:     req.AdmissionNo,
		GuardianContact: req.GuardianContact,
		Meta:            meta,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, s.db, &student); err != nil {
		return domain.Student{}, err
	}

	return student, nil
}

func (s *Service) List(ctx context.Context, req domain.ListStudentRequest) ([]domain.Student, error) {
	filter := domain.ListStudentFilter{BatchID: strings.TrimSpace(req.BatchID)}
	if id := strings.TrimSpace(req.InstitutionID); id != "" {
		parsed, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidInstitution
		}
		filter.InstitutionID = parsed
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	students := make([]domain.Student, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		students = append(students, *item)
	}
	return students, nil
}
