package server

import (
	"net/http"
	"strings"

	invoicedomain "github.com/eduverse/eduverse/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

type recordPaymentRequest struct {
	InstitutionID string  `json:"institution_id"`
	InvoiceID     string  `json:"invoice_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Provider      *string `json:"provider"`
	TxnRef        *string `json:"txn_ref"`
}

func (s *Server) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.RecordPayment(c.Request.Context(), invoicedomain.RecordPaymentRequest{
		InstitutionID: strings.TrimSpace(req.InstitutionID),
		InvoiceID:     strings.TrimSpace(req.InvoiceID),
		Amount:        req.Amount,
		Method:        strings.TrimSpace(req.Method),
		Provider:      req.Provider,
		TxnRef:        req.TxnRef,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	body := gin.H{"id": resp.PaymentID}
	if resp.InvoiceStatus != "" {
		body["invoice_status"] = resp.InvoiceStatus
	}
	if resp.StatusPending {
		body["status_pending"] = true
	}
	c.JSON(http.StatusCreated, body)
}
