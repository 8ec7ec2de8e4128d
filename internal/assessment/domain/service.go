package domain

import (
	"context"
	"errors"
)

type CreateQuestionRequest struct {
	InstitutionID string   `json:"institution_id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	Topic         *string  `json:"topic,omitempty"`
	Difficulty    *string  `json:"difficulty,omitempty"`
}

type CreateTestRequest struct {
	InstitutionID   string   `json:"institution_id"`
	Title           string   `json:"title"`
	QuestionIDs     []string `json:"question_ids"`
	BatchID         *string  `json:"batch_id,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

type CreateSubmissionRequest struct {
	InstitutionID string `json:"institution_id"`
	TestID        string `json:"test_id"`
	StudentID     string `json:"student_id"`
	Answers       []int  `json:"answers"`
}

type Service interface {
	CreateQuestion(context.Context, CreateQuestionRequest) (Question, error)
	CreateTest(context.Context, CreateTestRequest) (Test, error)
	CreateSubmission(context.Context, CreateSubmissionRequest) (Submission, error)
}

var (
	ErrInvalidInstitution  = errors.New("invalid_institution_id")
	ErrInvalidText         = errors.New("invalid_text")
	ErrInvalidOptions      = errors.New("invalid_options")
	ErrInvalidCorrectIndex = errors.New("invalid_correct_index")
	ErrInvalidDifficulty   = errors.New("invalid_difficulty")
	ErrInvalidTitle        = errors.New("invalid_title")
	ErrInvalidQuestions    = errors.New("invalid_question_ids")
	ErrInvalidBatch        = errors.New("invalid_batch_id")
	ErrInvalidTest         = errors.New("invalid_test_id")
	ErrInvalidStudent      = errors.New("invalid_student_id")
	ErrInvalidAnswers      = errors.New("invalid_answers")
)
