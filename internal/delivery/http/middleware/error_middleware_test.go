package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleTestError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec := handleTestError(t, domainerrors.ErrInsufficientStock)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INSUFFICIENT_STOCK"`)
}

func TestHandleHTTPError_TransactionFailure(t *testing.T) {
	rec := handleTestError(t, domainerrors.ErrTransactionFailed.WithDetails("begin: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"TRANSACTION_FAILED"`)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_WrappedRepositorySentinel(t *testing.T) {
	rec := handleTestError(t, errors.Wrap(repository.ErrPerfumeNotFound, "lookup"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PERFUME_NOT_FOUND"`)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleTestError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}

func TestHandleHTTPError_UnknownErrorFallsBackToInternal(t *testing.T) {
	rec := handleTestError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "boom", "internal causes must not leak to clients")
}
