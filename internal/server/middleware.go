package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/equiprofile/equiprofile/pkg/tenantctx"
	"github.com/gin-gonic/gin"
)

const (
	tenantIDHeader = "X-Tenant-ID"
	actorHeader    = "X-Actor"

	tenantIDKey = "tenant_id"
)

// TenantRequired resolves the calling tenant from the X-Tenant-ID header into
// an explicit request-scoped value. There is no ambient fallback: requests
// without a parseable tenant never reach a handler.
func (s *Server) TenantRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(tenantIDHeader))
		if raw == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		tenantID, err := snowflake.ParseString(raw)
		if err != nil || tenantID == 0 {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ctx := tenantctx.WithTenantID(c.Request.Context(), tenantID)
		if actor := strings.TrimSpace(c.GetHeader(actorHeader)); actor != "" {
			ctx = tenantctx.WithActor(ctx, actor)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Set(tenantIDKey, tenantID)

		c.Next()
	}
}

func tenantID(c *gin.Context) snowflake.ID {
	value, ok := c.Get(tenantIDKey)
	if !ok {
		return 0
	}
	id, _ := value.(snowflake.ID)
	return id
}
