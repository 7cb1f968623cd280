package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	bookingdomain "github.com/smallbiznis/aurum/internal/booking/domain"
)

type createBookingRequest struct {
	CustomerID      string  `json:"customer_id"`
	Description     string  `json:"description"`
	EstimatedAmount float64 `json:"estimated_amount"`
	AdvancePaid     float64 `json:"advance_paid"`
	ExpectedDate    string  `json:"expected_date"`
}

func (s *Server) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var expected *time.Time
	if raw := strings.TrimSpace(req.ExpectedDate); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			AbortWithError(c, newValidationError("expected_date", "invalid_expected_date", "invalid expected_date"))
			return
		}
		expected = &t
	}

	resp, err := s.bookingSvc.Create(c.Request.Context(), bookingdomain.CreateBookingRequest{
		CustomerID:      strings.TrimSpace(req.CustomerID),
		Description:     strings.TrimSpace(req.Description),
		EstimatedAmount: req.EstimatedAmount,
		AdvancePaid:     req.AdvancePaid,
		ExpectedDate:    expected,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBookings(c *gin.Context) {
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

	resp, err := s.bookingSvc.List(c.Request.Context(), bookingdomain.ListBookingRequest{
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

func (s *Server) GetBookingByID(c *gin.Context) {
	resp, err := s.bookingSvc.GetByID(c.Request.Context(), bookingdomain.GetBookingRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type setBookingStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) SetBookingStatus(c *gin.Context) {
	var req setBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.bookingSvc.SetStatus(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		bookingdomain.BookingStatus(strings.ToUpper(strings.TrimSpace(req.Status))))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
