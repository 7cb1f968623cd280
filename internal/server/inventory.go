package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	inventorydomain "github.com/smallbiznis/aurum/internal/inventory/domain"
)

type saveItemRequest struct {
	Barcode       string  `json:"barcode"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Weight        float64 `json:"weight"`
	Purity        string  `json:"purity"`
	MakingCharges float64 `json:"making_charges"`
	HSNCode       string  `json:"hsn_code"`
	InStock       *bool   `json:"in_stock,omitempty"`
}

func (r saveItemRequest) toDomain() inventorydomain.CreateItemRequest {
	return inventorydomain.CreateItemRequest{
		Barcode:       strings.TrimSpace(r.Barcode),
		Name:          strings.TrimSpace(r.Name),
		Category:      strings.TrimSpace(r.Category),
		Weight:        r.Weight,
		Purity:        strings.TrimSpace(r.Purity),
		MakingCharges: r.MakingCharges,
		HSNCode:       strings.TrimSpace(r.HSNCode),
	}
}

func (s *Server) CreateItem(c *gin.Context) {
	var req saveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.inventorySvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateItem(c *gin.Context) {
	var req saveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.inventorySvc.Update(c.Request.Context(), inventorydomain.UpdateItemRequest{
		ID:                strings.TrimSpace(c.Param("id")),
		CreateItemRequest: req.toDomain(),
		InStock:           req.InStock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListItems(c *gin.Context) {
	weightMin, err := queryFloat(c, "weight_min")
	if err != nil {
		AbortWithError(c, newValidationError("weight_min", "invalid_weight_min", "invalid weight_min"))
		return
	}
	weightMax, err := queryFloat(c, "weight_max")
	if err != nil {
		AbortWithError(c, newValidationError("weight_max", "invalid_weight_max", "invalid weight_max"))
		return
	}
	inStock, err := queryBool(c, "in_stock")
	if err != nil {
		AbortWithError(c, newValidationError("in_stock", "invalid_in_stock", "invalid in_stock"))
		return
	}

	resp, err := s.inventorySvc.List(c.Request.Context(), inventorydomain.ListItemRequest{
		Page:      queryInt(c, "page", 1),
		Search:    strings.TrimSpace(c.Query("search")),
		Category:  strings.TrimSpace(c.Query("category")),
		WeightMin: weightMin,
		WeightMax: weightMax,
		InStock:   inStock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetItemByID(c *gin.Context) {
	resp, err := s.inventorySvc.GetByID(c.Request.Context(), inventorydomain.GetItemRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// LookupBarcode answers the scan box on the billing screen. A miss is a
// 200 with found=false, not an error.
func (s *Server) LookupBarcode(c *gin.Context) {
	resp, err := s.inventorySvc.LookupBarcode(c.Request.Context(), strings.TrimSpace(c.Param("code")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteItem(c *gin.Context) {
	if err := s.inventorySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
