package server

import (
	"net/http"
	"strings"

	batchdomain "github.com/eduverse/eduverse/internal/batch/domain"
	"github.com/gin-gonic/gin"
)

type createBatchRequest struct {
	InstitutionID string   `json:"institution_id"`
	Name          string   `json:"name"`
	Subject       *string  `json:"subject"`
	TeacherIDs    []string `json:"teacher_ids"`
	Schedule      *string  `json:"schedule"`
}

func (s *Server) CreateBatch(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	batch, err := s.batchSvc.Create(c.Request.Context(), batchdomain.CreateBatchRequest{
		InstitutionID: strings.TrimSpace(req.InstitutionID),
		Name:          strings.TrimSpace(req.Name),
		Subject:       req.Subject,
		TeacherIDs:    req.TeacherIDs,
		Schedule:      req.Schedule,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": batch.ID.String()})
}

func (s *Server) ListBatches(c *gin.Context) {
	var query struct {
		InstitutionID string `form:"institution_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	batches, err := s.batchSvc.List(c.Request.Context(), batchdomain.ListBatchRequest{
		InstitutionID: strings.TrimSpace(query.InstitutionID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": batches})
}
