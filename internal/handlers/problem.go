package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/stock_trading_app/internal/apperrors"
	"github.com/SscSPs/stock_trading_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const (
	problemContentType = "application/problem+json"

	titleStockNotFound       = "Stock Not Found!!!"
	titleUnableToCreateStock = "Unable to create Stock!!!"
)

// problemTitle picks a title for the error kind. Specific kinds are checked before their parents.
func problemTitle(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrCurrencyRateNotFound):
		return "Currency Rate Not Found!!!"
	case errors.Is(err, apperrors.ErrNotFound):
		return titleStockNotFound
	case errors.Is(err, apperrors.ErrCreationFailed):
		return titleUnableToCreateStock
	case errors.Is(err, apperrors.ErrMultipleMatches):
		return "Ambiguous Currency Rate"
	case errors.Is(err, apperrors.ErrValidation):
		return "Invalid Request"
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

// writeProblem aborts the request with a problem detail body.
func writeProblem(c *gin.Context, status int, title, detail string) {
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(status, dto.ProblemDetail{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	})
}

// writeError maps err onto its status and title. Unclassified errors never leak their text.
func writeError(c *gin.Context, err error) {
	status := apperrors.StatusFor(err)
	detail := apperrors.MessageOf(err)
	var appErr *apperrors.AppError
	if status == http.StatusInternalServerError && !errors.As(err, &appErr) {
		detail = "An unexpected error occurred"
	}
	writeProblem(c, status, problemTitle(err), detail)
}
