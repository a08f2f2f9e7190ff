package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/p2p/backend/internal/domain/shared"
	"github.com/p2p/backend/internal/interfaces/http/dto"
)

// respondError maps an error to its HTTP envelope. Domain errors keep their
// code and message; anything else is surfaced as a generic fetch failure so
// internal error text never leaks to the client.
func respondError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeFetchFailed, shared.ErrFetchFailed.Message))
}
