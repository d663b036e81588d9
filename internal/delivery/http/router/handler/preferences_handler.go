package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"parfum/internal/delivery/http/middleware"
	"parfum/internal/delivery/http/response"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferencesHandler holds dependencies for quiz and recommendation handlers.
type PreferencesHandler struct {
	uc     usecase.PreferencesUsecase
	recUC  usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewPreferencesHandler is the constructor for PreferencesHandler, injected by Fx.
func NewPreferencesHandler(uc usecase.PreferencesUsecase, recUC usecase.RecommendationUsecase, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		uc:     uc,
		recUC:  recUC,
		logger: logger,
	}
}

type quizAnswersRequest struct {
	PreferredGender     string   `json:"preferredGender" validate:"required"`
	FavoriteSeasons     []string `json:"favoriteSeasons" validate:"required,min=1"`
	PreferredOccasions  []string `json:"preferredOccasions" validate:"required,min=1"`
	FragranceFamilies   []string `json:"fragranceFamilies" validate:"required,min=1"`
	IntensityPreference string   `json:"intensityPreference" validate:"required"`
}

type updatePreferencesRequest struct {
	PreferredGender     *string  `json:"preferredGender"`
	FavoriteSeasons     []string `json:"favoriteSeasons"`
	PreferredOccasions  []string `json:"preferredOccasions"`
	FragranceFamilies   []string `json:"fragranceFamilies"`
	IntensityPreference *string  `json:"intensityPreference"`
}

// QuizQuestions serves the static quiz payload.
func (h *PreferencesHandler) QuizQuestions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.QuizQuestions(), "")
}

// SubmitQuiz stores a full quiz submission for the authenticated user.
func (h *PreferencesHandler) SubmitQuiz(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req quizAnswersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quiz input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prefs, err := h.uc.SubmitQuiz(c.Request().Context(), userID, &usecase.QuizAnswersInput{
		PreferredGender:     req.PreferredGender,
		FavoriteSeasons:     req.FavoriteSeasons,
		PreferredOccasions:  req.PreferredOccasions,
		FragranceFamilies:   req.FragranceFamilies,
		IntensityPreference: req.IntensityPreference,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPreferencesView(prefs), "Quiz submitted successfully")
}

// GetPreferences returns the authenticated user's stored answers.
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	prefs, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPreferencesView(prefs), "")
}

// UpdatePreferences applies a partial update to stored answers.
func (h *PreferencesHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	prefs, err := h.uc.UpdatePreferences(c.Request().Context(), userID, &usecase.UpdatePreferencesInput{
		PreferredGender:     req.PreferredGender,
		FavoriteSeasons:     req.FavoriteSeasons,
		PreferredOccasions:  req.PreferredOccasions,
		FragranceFamilies:   req.FragranceFamilies,
		IntensityPreference: req.IntensityPreference,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPreferencesView(prefs), "Preferences updated successfully")
}

// Recommendations serves the personalized listing for the authenticated user.
func (h *PreferencesHandler) Recommendations(c echo.Context) error {
	return serveRecommendations(c, h.recUC)
}

// serveRecommendations is shared by the two recommendation routes.
func serveRecommendations(c echo.Context, recUC usecase.RecommendationUsecase) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	input := &usecase.RecommendationsInput{}
	var err error
	if input.Limit, err = parseOptionalInt(c.QueryParam("limit")); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "limit must be a positive integer")
	}
	if input.Page, err = parseOptionalInt(c.QueryParam("page")); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "page must be a positive integer")
	}
	if input.PageSize, err = parseOptionalInt(c.QueryParam("pageSize")); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "pageSize must be a positive integer")
	}

	output, err := recUC.Recommendations(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecommendationsView(output), "")
}

// parseOptionalInt parses an optional positive integer query parameter.
// Zero means "not provided".
func parseOptionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, errors.New("must be a positive integer")
	}

	return value, nil
}
