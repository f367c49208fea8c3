package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/ampeli/wineroulette/internal/delivery/http/common"
)

// ReadOnly rejects mutating requests when the instance runs in "RO"
// mode, e.g. a replica kept around for session reads during a migration.
func ReadOnly(mode string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if mode != "RO" {
			ctx.Next()
			return
		}

		if ctx.Request.Method == http.MethodGet {
			ctx.Next()
			return
		}

		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "write operations not allowed on read-only instance",
		})
		ctx.Abort()
	}
}
