package server

import (
	"net/http"
	"strings"

	invoicedomain "github.com/eduverse/eduverse/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

type createInvoiceItem struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type createInvoiceRequest struct {
	InstitutionID string              `json:"institution_id"`
	StudentID     string              `json:"student_id"`
	Items         []createInvoiceItem `json:"items"`
	GSTPercent    float64             `json:"gst_percent"`
	Currency      string              `json:"currency"`
	DueDate       *string             `json:"due_date"`
	Metadata      map[string]string   `json:"metadata"`
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	items := make([]invoicedomain.InvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, invoicedomain.InvoiceItem{
			Title:  strings.TrimSpace(item.Title),
			Amount: item.Amount,
		})
	}

	invoice, err := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.CreateInvoiceRequest{
		InstitutionID: strings.TrimSpace(req.InstitutionID),
		StudentID:     strings.TrimSpace(req.StudentID),
		Items:         items,
		GSTPercent:    req.GSTPercent,
		Currency:      strings.TrimSpace(req.Currency),
		DueDate:       req.DueDate,
		Metadata:      req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": invoice.ID.String()})
}

func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		InstitutionID string `form:"institution_id"`
		StudentID     string `form:"student_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context(), invoicedomain.ListInvoiceRequest{
		InstitutionID: strings.TrimSpace(query.InstitutionID),
		StudentID:     strings.TrimSpace(query.StudentID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoices})
}
