package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	layawaydomain "github.com/smallbiznis/aurum/internal/layaway/domain"
)

type createLayawayRequest struct {
	CustomerID  string  `json:"customer_id"`
	BillID      string  `json:"bill_id"`
	TotalAmount float64 `json:"total_amount"`
}

func (s *Server) CreateLayaway(c *gin.Context) {
	var req createLayawayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.layawaySvc.Create(c.Request.Context(), layawaydomain.CreatePlanRequest{
		CustomerID:  strings.TrimSpace(req.CustomerID),
		BillID:      strings.TrimSpace(req.BillID),
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type recordLayawayPaymentRequest struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

func (s *Server) RecordLayawayPayment(c *gin.Context) {
	var req recordLayawayPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.layawaySvc.RecordPayment(c.Request.Context(), layawaydomain.RecordPaymentRequest{
		PlanID:    strings.TrimSpace(c.Param("id")),
		Amount:    req.Amount,
		Method:    strings.TrimSpace(req.Method),
		Reference: strings.TrimSpace(req.Reference),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLayaways(c *gin.Context) {
	dateFrom, err := queryDate(c, "date_from", false)
	if err != nil {
		AbortWithError(c, newValidationError("date_from", "invalid_date_from", "invalid date_from"))
		return
	}
	dateTo, err := queryDate(c, "date_to", true)
	if err != nil {
		AbortWithError(c, newValidationError("date_to", "invalid_date_to", "invalid date_to"))
		return
	}

	resp, err := s.layawaySvc.List(c.Request.Context(), layawaydomain.ListPlanRequest{
		Page:       queryInt(c, "page", 1),
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
		Status:     strings.TrimSpace(c.Query("status")),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetLayawayByID(c *gin.Context) {
	resp, err := s.layawaySvc.GetByID(c.Request.Context(), layawaydomain.GetPlanRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CancelLayaway(c *gin.Context) {
	resp, err := s.layawaySvc.Cancel(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
