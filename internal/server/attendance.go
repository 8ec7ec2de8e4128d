package server

import (
	"net/http"
	"strings"

	attendancedomain "github.com/eduverse/eduverse/internal/attendance/domain"
	"github.com/gin-gonic/gin"
)

type markAttendanceRequest struct {
	InstitutionID string   `json:"institution_id"`
	StudentID     string   `json:"student_id"`
	BatchID       *string  `json:"batch_id"`
	Date          string   `json:"date"`
	Status        string   `json:"status"`
	Mode          string   `json:"mode"`
	GPSLat        *float64 `json:"gps_lat"`
	GPSLng        *float64 `json:"gps_lng"`
	Notes         *string  `json:"notes"`
}

func (s *Server) MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	attendance, err := s.attendanceSvc.Mark(c.Request.Context(), attendancedomain.MarkAttendanceRequest{
		InstitutionID: strings.TrimSpace(req.InstitutionID),
		StudentID:     strings.TrimSpace(req.StudentID),
		BatchID:       req.BatchID,
		Date:          strings.TrimSpace(req.Date),
		Status:        strings.TrimSpace(req.Status),
		Mode:          strings.TrimSpace(req.Mode),
		GPSLat:        req.GPSLat,
		GPSLng:        req.GPSLng,
		Notes:         req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": attendance.ID.String()})
}

func (s *Server) ListAttendance(c *gin.Context) {
	var query struct {
		InstitutionID string `form:"institution_id"`
		StudentID     string `form:"student_id"`
		Date          string `form:"date"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	records, err := s.attendanceSvc.List(c.Request.Context(), attendancedomain.ListAttendanceRequest{
		InstitutionID: strings.TrimSpace(query.InstitutionID),
		StudentID:     strings.TrimSpace(query.StudentID),
		Date:          strings.TrimSpace(query.Date),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (s *Server) AttendanceTrend(c *gin.Context) {
	var query struct {
		InstitutionID string `form:"institution_id"`
		StudentID     string `form:"student_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	trend, err := s.attendanceSvc.Trend(c.Request.Context(), attendancedomain.TrendRequest{
		InstitutionID: strings.TrimSpace(query.InstitutionID),
		StudentID:     strings.TrimSpace(query.StudentID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trend})
}
