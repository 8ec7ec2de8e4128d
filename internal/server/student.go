package server

import (
	"net/http"
	"strings"

	studentdomain "github.com/eduverse/eduverse/internal/student/domain"
	"github.com/gin-gonic/gin"
)

type createStudentRequest struct {
	InstitutionID   string            `json:"institution_id"`
	UserID          string            `json:"user_id"`
	BatchIDs        []string          `json:"batch_ids"`
	AdmissionNo     *string           `json:"admission_no"`
	GuardianContact *string           `json:"guardian_contact"`
	Meta            map[string]string `json:"meta"`
}

func (s *Server) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	student, err := s.studentSvc.Create(c.Request.Context(), studentdomain.CreateStudentRequest{
		InstitutionID:   strings.TrimSpace(req.InstitutionID),
		UserID:          strings.TrimSpace(req.UserID),
		BatchIDs:        req.BatchIDs,
		AdmissionNo:     req.AdmissionNo,
		GuardianContact: req.GuardianContact,
		Meta:            req.Meta,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": student.ID.String()})
}

func (s *Server) ListStudents(c *gin.Context) {
	var query struct {
		InstitutionID string `form:"institution_id"`
		BatchID       string `form:"batch_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	students, err := s.studentSvc.List(c.Request.Context(), studentdomain.ListStudentRequest{
		InstitutionID: strings.TrimSpace(query.InstitutionID),
		BatchID:       strings.TrimSpace(query.BatchID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": students})
}
