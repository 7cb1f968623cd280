package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/smallbiznis/aurum/internal/billing/domain"
)

type billLineRequest struct {
	Barcode       string  `json:"barcode"`
	ItemName      string  `json:"item_name"`
	Weight        float64 `json:"weight"`
	Rate          float64 `json:"rate"`
	MakingCharges float64 `json:"making_charges"`
}

type billSurchargeRequest struct {
	Weight float64 `json:"weight"`
	Rate   float64 `json:"rate"`
}

type billOldGoldRequest struct {
	Weight      float64 `json:"weight"`
	Rate        float64 `json:"rate"`
	Purity      string  `json:"purity"`
	Particulars string  `json:"particulars"`
	HSNCode     string  `json:"hsn_code"`
}

type billPaymentRequest struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

type saveBillRequest struct {
	CustomerID    string               `json:"customer_id"`
	SaleType      string               `json:"sale_type"`
	Items         []billLineRequest    `json:"items"`
	Surcharge     billSurchargeRequest `json:"surcharge"`
	OldGold       *billOldGoldRequest  `json:"old_gold,omitempty"`
	Discount      float64              `json:"discount"`
	TargetPayable *float64             `json:"target_payable,omitempty"`
	Payments      []billPaymentRequest `json:"payments"`
}

func (r saveBillRequest) toDomain() billingdomain.SaveBillRequest {
	req := billingdomain.SaveBillRequest{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		SaleType:      billingdomain.SaleType(strings.TrimSpace(r.SaleType)),
		Discount:      r.Discount,
		TargetPayable: r.TargetPayable,
		Surcharge: billingdomain.SurchargeInput{
			Weight: r.Surcharge.Weight,
			Rate:   r.Surcharge.Rate,
		},
	}

	for _, it := range r.Items {
		req.Items = append(req.Items, billingdomain.LineItemInput{
			Barcode:       strings.TrimSpace(it.Barcode),
			ItemName:      strings.TrimSpace(it.ItemName),
			Weight:        it.Weight,
			Rate:          it.Rate,
			MakingCharges: it.MakingCharges,
		})
	}

	if r.OldGold != nil {
		req.OldGold = &billingdomain.OldGoldInput{
			Weight:      r.OldGold.Weight,
			Rate:        r.OldGold.Rate,
			Purity:      strings.TrimSpace(r.OldGold.Purity),
			Particulars: strings.TrimSpace(r.OldGold.Particulars),
			HSNCode:     strings.TrimSpace(r.OldGold.HSNCode),
		}
	}

	for _, p := range r.Payments {
		req.PaymentMethods = append(req.PaymentMethods, billingdomain.PaymentMethod{
			Type:      strings.TrimSpace(p.Type),
			Amount:    p.Amount,
			Reference: strings.TrimSpace(p.Reference),
		})
	}

	return req
}

// PreviewBill recomputes the money column of the billing screen. Nothing is
// persisted, so no staff identity is required.
func (s *Server) PreviewBill(c *gin.Context) {
	var req saveBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.billingSvc.Preview(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateBill(c *gin.Context) {
	var req saveBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.billingSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveBillSaved()
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateBill(c *gin.Context) {
	var req saveBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.billingSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBillByID(c *gin.Context) {
	resp, err := s.billingSvc.Get(c.Request.Context(), billingdomain.GetBillRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBills(c *gin.Context) {
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
	amountMin, err := queryFloat(c, "amount_min")
	if err != nil {
		AbortWithError(c, newValidationError("amount_min", "invalid_amount_min", "invalid amount_min"))
		return
	}
	amountMax, err := queryFloat(c, "amount_max")
	if err != nil {
		AbortWithError(c, newValidationError("amount_max", "invalid_amount_max", "invalid amount_max"))
		return
	}

	resp, err := s.billingSvc.List(c.Request.Context(), billingdomain.ListBillRequest{
		Page:       queryInt(c, "page", 1),
		BillNo:     strings.TrimSpace(c.Query("bill_no")),
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
		SaleType:   strings.TrimSpace(c.Query("sale_type")),
		Status:     strings.TrimSpace(c.Query("status")),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		AmountMin:  amountMin,
		AmountMax:  amountMax,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) VoidBill(c *gin.Context) {
	if err := s.billingSvc.Void(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"voided": true}})
}

func (s *Server) BillReceipt(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	doc, err := s.billingSvc.Receipt(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveReceiptPrinted()
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="receipt-`+id+`.pdf"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}
