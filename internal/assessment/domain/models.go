// Package domain contains persistence models for simple tests: question
// banks, test definitions and student submissions. Grading is out of scope.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Difficulty labels a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a multiple-choice question owned by an institution.
type Question struct {
	ID            snowflake.ID                `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID                `gorm:"not null;index" json:"institution_id"`
	Text          string                      `gorm:"not null" json:"text"`
	Options       datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	CorrectIndex  int                         `gorm:"not null" json:"correct_index"`
	Topic         *string                     `json:"topic,omitempty"`
	Difficulty    *Difficulty                 `gorm:"type:text" json:"difficulty,omitempty"`
	CreatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Question) TableName() string { return "questions" }

// Test groups questions for a batch.
type Test struct {
	ID              snowflake.ID                `gorm:"primaryKey" json:"id"`
	InstitutionID   snowflake.ID                `gorm:"not null;index" json:"institution_id"`
	Title           string                      `gorm:"not null" json:"title"`
	QuestionIDs     datatypes.JSONSlice[string] `gorm:"not null" json:"question_ids"`
	BatchID         *snowflake.ID               `gorm:"index" json:"batch_id,omitempty"`
	DurationMinutes *int                        `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Test) TableName() string { return "tests" }

// Submission records a student's selected option per question.
type Submission struct {
	ID            snowflake.ID             `gorm:"primaryKey" json:"id"`
	InstitutionID snowflake.ID             `gorm:"not null;index" json:"institution_id"`
	TestID        snowflake.ID             `gorm:"not null;index" json:"test_id"`
	StudentID     snowflake.ID             `gorm:"not null;index" json:"student_id"`
	Answers       datatypes.JSONSlice[int] `gorm:"not null" json:"answers"`
	CreatedAt     time.Time                `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Submission) TableName() string { return "submissions" }

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}
