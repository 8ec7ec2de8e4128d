package server

import (
	"net/http"
	"strings"

	assessmentdomain "github.com/eduverse/eduverse/internal/assessment/domain"
	"github.com/gin-gonic/gin"
)

type createQuestionRequest struct {
	InstitutionID string   `json:"institution_id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	Topic         *string  `json:"topic"`
	Difficulty    *string  `json:"difficulty"`
}

type createTestRequest struct {
	InstitutionID   string   `json:"institution_id"`
	Title           string   `json:"title"`
	QuestionIDs     []string `json:"question_ids"`
	BatchID         *string  `json:"batch_id"`
	DurationMinutes *int     `json:"duration_minutes"`
}

type createSubmissionRequest struct {
	InstitutionID string `json:"institution_id"`
	TestID        string `json:"test_id"`
	StudentID     string `json:"student_id"`
	Answers       []int  `json:"answers"`
}

func (s *Server) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	question, err := s.assessmentSvc.CreateQuestion(c.Request.Context(), assessmentdomain.CreateQuestionRequest{
		InstitutionID: strings.TrimSpace(req.InstitutionID),
		Text:          req.Text,
		Options:       req.Options,
		CorrectIndex:  req.CorrectIndex,
		Topic:         req.Topic,
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": question.ID.String()})
}

func (s *Server) CreateTest(c *gin.Context) {
	var req createTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	test, err := s.assessmentSvc.CreateTest(c.Request.Context(), assessmentdomain.CreateTestRequest{
		InstitutionID:   strings.TrimSpace(req.InstitutionID),
		Title:           strings.TrimSpace(req.Title),
		QuestionIDs:     req.QuestionIDs,
		BatchID:         req.BatchID,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": test.ID.String()})
}

func (s *Server) CreateSubmission(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	submission, err := s.assessmentSvc.CreateSubmission(c.Request.Context(), assessmentdomain.CreateSubmissionRequest{
		InstitutionID: strings.TrimSpace(req.InstitutionID),
		TestID:        strings.TrimSpace(req.TestID),
		StudentID:     strings.TrimSpace(req.StudentID),
		Answers:       req.Answers,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": submission.ID.String()})
}
