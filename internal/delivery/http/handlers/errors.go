package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/dto/catalog/response"
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

func respondWithError(c *gin.Context, err error) {
	var verrs usecase.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrDepositNotFound), errors.Is(err, domain.ErrBankNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: err.Error()})
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Message: "Invalid request data",
			Details: verrs,
		})
	default:
		slog.Error("request failed",
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "internal server error"})
	}
}

func respondWithBadRequest(c *gin.Context, field, constraint, message string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Message: "Invalid request data",
		Details: []usecase.ValidationError{{Field: field, Constraint: constraint, Message: message}},
	})
}
