package http

import (
	"net/http"

	"github.com/pageland/matrix-bike-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}

// errorStatusCodes is the whole error-to-status contract: kinds listed here
// map to their code, everything else is a 500.
var errorStatusCodes = map[domain.ErrorKind]int{
	domain.ErrorKindInvalidArgument: http.StatusBadRequest,
	domain.ErrorKindNotFound:        http.StatusNotFound,
}

func statusForError(err error) int {
	if status, ok := errorStatusCodes[domain.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
