package domain

import (
	"context"
	"errors"
)

type MarkAttendanceRequest struct {
	InstitutionID string   `json:"institution_id"`
	StudentID     string   `json:"student_id"`
	BatchID       *string  `json:"batch_id,omitempty"`
	Date          string   `json:"date"`
	Status        string   `json:"status,omitempty"`
	Mode          string   `json:"mode,omitempty"`
	GPSLat        *float64 `json:"gps_lat,omitempty"`
	GPSLng        *float64 `json:"gps_lng,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

type ListAttendanceRequest struct {
	InstitutionID string
	StudentID     string
	Date          string
}

type TrendRequest struct {
	InstitutionID string
	StudentID     string
}

// TrendPoint aggregates one date of a student's attendance history.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Total   int64  `json:"total"`
}

type Service interface {
	Mark(context.Context, MarkAttendanceRequest) (Attendance, error)
	List(context.Context, ListAttendanceRequest) ([]Attendance, error)
	Trend(context.Context, TrendRequest) ([]TrendPoint, error)
}

var (
	ErrInvalidInstitution = errors.New("invalid_institution_id")
	ErrInvalidStudent     = errors.New("invalid_student_id")
	ErrInvalidBatch       = errors.New("invalid_batch_id")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidMode        = errors.New("invalid_mode")
)
