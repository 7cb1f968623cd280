package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	goldratedomain "github.com/smallbiznis/aurum/internal/goldrate/domain"
)

type setGoldRateRequest struct {
	RatePerGram float64 `json:"rate_per_gram"`
}

func (s *Server) SetGoldRate(c *gin.Context) {
	var req setGoldRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.goldRateSvc.SetToday(c.Request.Context(), goldratedomain.SetRateRequest{
		RatePerGram: req.RatePerGram,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTodayGoldRate(c *gin.Context) {
	resp, err := s.goldRateSvc.Today(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListGoldRates(c *gin.Context) {
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

	resp, err := s.goldRateSvc.List(c.Request.Context(), goldratedomain.ListRateRequest{
		Page:     queryInt(c, "page", 1),
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
