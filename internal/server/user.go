package server

import (
	"net/http"
	"strings"

	userdomain "github.com/eduverse/eduverse/internal/user/domain"
	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	InstitutionID   string  `json:"institution_id"`
	Role            string  `json:"role"`
	Name            string  `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Password        *string `json:"password"`
	LinkedStudentID *string `json:"linked_student_id"`
}

func (s *Server) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.userSvc.Create(c.Request.Context(), userdomain.CreateUserRequest{
		InstitutionID:   strings.TrimSpace(req.InstitutionID),
		Role:            strings.TrimSpace(req.Role),
		Name:            strings.TrimSpace(req.Name),
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		LinkedStudentID: req.LinkedStudentID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID.String()})
}

func (s *Server) ListUsers(c *gin.Context) {
	var query struct {
		InstitutionID string `form:"institution_id"`
		Role          string `form:"role"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	users, err := s.userSvc.List(c.Request.Context(), userdomain.ListUserRequest{
		InstitutionID: strings.TrimSpace(query.InstitutionID),
		Role:          strings.TrimSpace(query.Role),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}
