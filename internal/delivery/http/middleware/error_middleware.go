package middleware

import (
	"fmt"
	"log/slog"

	"parfum/internal/delivery/http/response"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status and business code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Repository sentinels that escaped the usecase layer still map to 404.
	if notFound := repositoryNotFound(err); notFound != nil {
		_ = response.Error(c, notFound.HTTPCode(), notFound.ErrorCode(), notFound.Message(), notFound.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	internal := domainerrors.ErrInternalError
	_ = response.Error(c, internal.HTTPCode(), internal.ErrorCode(), internal.Message(), "")
}

// repositoryNotFound maps the repository not-found sentinels onto their
// AppError counterparts.
func repositoryNotFound(err error) domainerrors.AppError {
	switch {
	case errors.Is(err, repository.ErrPerfumeNotFound):
		return domainerrors.ErrPerfumeNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrReviewNotFound):
		return domainerrors.ErrReviewNotFound
	case errors.Is(err, repository.ErrPreferencesNotFound):
		return domainerrors.ErrPreferencesNotFound
	default:
		return nil
	}
}
