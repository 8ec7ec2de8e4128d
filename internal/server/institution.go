package server

import (
	"net/http"
	"strings"

	institutiondomain "github.com/eduverse/eduverse/internal/institution/domain"
	"github.com/gin-gonic/gin"
)

type createInstitutionRequest struct {
	Name         string  `json:"name"`
	Subdomain    *string `json:"subdomain"`
	Plan         string  `json:"plan"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
}

func (s *Server) CreateInstitution(c *gin.Context) {
	var req createInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	institution, err := s.institutionSvc.Create(c.Request.Context(), institutiondomain.CreateInstitutionRequest{
		Name:         strings.TrimSpace(req.Name),
		Subdomain:    req.Subdomain,
		Plan:         strings.TrimSpace(req.Plan),
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": institution.ID.String()})
}

func (s *Server) ListInstitutions(c *gin.Context) {
	institutions, err := s.institutionSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": institutions})
}
