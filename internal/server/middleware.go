package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/aurum/internal/staffctx"
)

const staffHeader = "X-Staff-Id"

// StaffMiddleware lifts the authenticated staff identity off the request
// headers into the context. The counter terminal in front of this API is
// trusted; services still reject mutations when no identity is present.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(staffHeader)
		if raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				c.Request = c.Request.WithContext(staffctx.WithStaffID(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}
