package handler

import (
	"log/slog"
	"net/http"

	"parfum/internal/delivery/http/middleware"
	"parfum/internal/delivery/http/response"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitReviewRequest struct {
	Rating  *int   `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// List returns one page of a perfume's reviews.
func (h *ReviewHandler) List(c echo.Context) error {
	perfumeID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListReviews(c.Request().Context(), perfumeID, &usecase.ListReviewsInput{
		Page:      c.QueryParam("page"),
		Limit:     c.QueryParam("limit"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews": toReviewViews(page.Reviews),
		"pagination": PaginationView{
			Page:       page.Page,
			PageSize:   page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}, "")
}

// Submit upserts the authenticated user's review of a perfume.
func (h *ReviewHandler) Submit(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	perfumeID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), userID, perfumeID, &usecase.SubmitReviewInput{
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewView(review), "Review submitted successfully")
}

// Delete removes the authenticated user's review of a perfume.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	perfumeID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), userID, perfumeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
