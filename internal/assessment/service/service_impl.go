package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/assessment/domain"
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
		log:   p.Log.Named("assessment.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) CreateQuestion(ctx context.Context, req domain.CreateQuestionRequest) (domain.Question, error) {
	institutionID, err := parseID(req.InstitutionID)
	if err != nil {
		return domain.Question{}, domain.ErrInvalidInstitution
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.Question{}, domain.ErrInvalidText
	}
	if len(req.Options) < 2 {
		return domain.Question{}, domain.ErrInvalidOptions
	}
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		return domain.Question{}, domain.ErrInvalidCorrectIndex
	}

	var difficulty *domain.Difficulty
	if req.Difficulty != nil && strings.TrimSpace(*req.Difficulty) != "" {
		value := domain.Difficulty(strings.TrimSpace(*req.Difficulty))
		if !value.Valid() {
			return domain.Question{}, domain.ErrInvalidDifficulty
		}
		difficulty = &value
	}

	question := domain.Question{
		ID:            s.genID.Generate(),
		InstitutionID: institutionID,
		Text:          text,
		Options:       datatypes.NewJSONSlice(req.Options),
		CorrectIndex:  req.CorrectIndex,
		Topic:         req.Topic,
		Difficulty:    difficulty,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.InsertQuestion(ctx, s.db, &question); err != nil {
		return domain.Question{}, err
	}
	return question, nil
}

func (s *Service) CreateTest(ctx context.Context, req domain.CreateTestRequest) (domain.Test, error) {
	institutionID, err := parseID(req.InstitutionID)
	if err != nil {
		return domain.Test{}, domain.ErrInvalidInstitution
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Test{}, domain.ErrInvalidTitle
	}
	if len(req.QuestionIDs) == 0 {
		return domain.Test{}, domain.ErrInvalidQuestions
	}
	for _, raw := range req.QuestionIDs {
		if _, err := parseID(raw); err != nil {
			return domain.Test{}, domain.ErrInvalidQuestions
		}
	}

	var batchID *snowflake.ID
	if req.BatchID != nil && strings.TrimSpace(*req.BatchID) != "" {
		parsed, err := parseID(*req.BatchID)
		if err != nil {
			return domain.Test{}, domain.ErrInvalidBatch
		}
		batchID = &parsed
	}

	test := domain.Test{
		ID:              s.genID.Generate(),
		InstitutionID:   institutionID,
		Title:           title,
		QuestionIDs:     datatypes.NewJSONSlice(req.QuestionIDs),
		BatchID:         batchID,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.InsertTest(ctx, s.db, &test); err != nil {
		return domain.Test{}, err
	}
	return test, nil
}

func (s *Service) CreateSubmission(ctx context.Context, req domain.CreateSubmissionRequest) (domain.Submission, error) {
	institutionID, err := parseID(req.InstitutionID)
	if err != nil {
		return domain.Submission{}, domain.ErrInvalidInstitution
	}

	testID, err := parseID(req.TestID)
	if err != nil {
		return domain.Submission{}, domain.ErrInvalidTest
	}

	studentID, err := parseID(req.StudentID)
	if err != nil {
		return domain.Submission{}, domain.ErrInvalidStudent
	}

	if len(req.Answers) == 0 {
		return domain.Submission{}, domain.ErrInvalidAnswers
	}

	submission := domain.Submission{
		ID:            s.genID.Generate(),
		InstitutionID: institutionID,
		TestID:        testID,
		StudentID:     studentID,
		Answers:       datatypes.NewJSONSlice(req.Answers),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.InsertSubmission(ctx, s.db, &submission); err != nil {
		return domain.Submission{}, err
	}
	return submission, nil
}

var errMalformedID = errors.New("malformed_id")

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, errMalformedID
	}
	return id, nil
}
