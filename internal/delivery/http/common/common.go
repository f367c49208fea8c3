package http_common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

const UserTokenHeader = "X-user-token"

// CallerID extracts the authenticated caller from the X-user-token
// header. Writes the 400/401 response itself and reports false when the
// header is missing or malformed.
func CallerID(ctx *gin.Context) (uuid.UUID, bool) {
	token := ctx.GetHeader(UserTokenHeader)
	if token == "" {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: UserTokenHeader + " header required",
		})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(token)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid user token format",
		})
		return uuid.Nil, false
	}

	return userID, true
}
