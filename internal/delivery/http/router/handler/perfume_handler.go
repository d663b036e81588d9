package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"parfum/internal/delivery/http/response"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PerfumeHandler holds dependencies for catalog handlers.
type PerfumeHandler struct {
	uc     usecase.CatalogUsecase
	recUC  usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewPerfumeHandler is the constructor for PerfumeHandler, injected by Fx.
func NewPerfumeHandler(uc usecase.CatalogUsecase, recUC usecase.RecommendationUsecase, logger *slog.Logger) *PerfumeHandler {
	return &PerfumeHandler{
		uc:     uc,
		recUC:  recUC,
		logger: logger,
	}
}

type perfumeRequest struct {
	Name            string   `json:"name" validate:"required"`
	Brand           string   `json:"brand" validate:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Stock           int      `json:"stock"`
	Size            float64  `json:"size"`
	Image           string   `json:"image"`
	Gender          string   `json:"gender" validate:"required"`
	Season          string   `json:"season" validate:"required"`
	Occasion        string   `json:"occasion" validate:"required"`
	Intensity       string   `json:"intensity" validate:"required"`
	FragranceFamily string   `json:"fragranceFamily" validate:"required"`
	TopNotes        []string `json:"topNotes"`
	MiddleNotes     []string `json:"middleNotes"`
	BaseNotes       []string `json:"baseNotes"`
	Longevity       int      `json:"longevity"`
	Sillage         int      `json:"sillage"`
}

func (req *perfumeRequest) toInput() *usecase.PerfumeInput {
	return &usecase.PerfumeInput{
		Name:            req.Name,
		Brand:           req.Brand,
		Description:     req.Description,
		Price:           req.Price,
		Stock:           req.Stock,
		Size:            req.Size,
		Image:           req.Image,
		Gender:          req.Gender,
		Season:          req.Season,
		Occasion:        req.Occasion,
		Intensity:       req.Intensity,
		FragranceFamily: req.FragranceFamily,
		TopNotes:        req.TopNotes,
		MiddleNotes:     req.MiddleNotes,
		BaseNotes:       req.BaseNotes,
		Longevity:       req.Longevity,
		Sillage:         req.Sillage,
	}
}

// List handles the catalog browse request with all its optional predicates.
func (h *PerfumeHandler) List(c echo.Context) error {
	query := &usecase.CatalogQuery{
		Gender:          c.QueryParam("gender"),
		Search:          c.QueryParam("q"),
		MinPrice:        c.QueryParam("minPrice"),
		MaxPrice:        c.QueryParam("maxPrice"),
		MinRating:       c.QueryParam("minRating"),
		Season:          c.QueryParam("season"),
		Occasion:        c.QueryParam("occasion"),
		Intensity:       c.QueryParam("intensity"),
		FragranceFamily: c.QueryParam("fragranceFamily"),
		SortBy:          c.QueryParam("sortBy"),
		SortOrder:       c.QueryParam("sortOrder"),
		Page:            c.QueryParam("page"),
		PageSize:        c.QueryParam("pageSize"),
	}

	page, err := h.uc.ListPerfumes(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"perfumes": toPerfumeViews(page.Perfumes),
		"pagination": PaginationView{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}, "")
}

// Get returns a single perfume by id.
func (h *PerfumeHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	perfume, err := h.uc.GetPerfume(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPerfumeView(perfume), "")
}

// Similar returns in-stock perfumes resembling the given one.
func (h *PerfumeHandler) Similar(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return response.BadRequest(c, "VALIDATION_FAILED", "limit must be a positive integer")
		}
	}

	similar, err := h.uc.SimilarPerfumes(c.Request().Context(), id, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPerfumeViews(similar), "")
}

// Recommendations serves the personalized catalog view for the authenticated user.
func (h *PerfumeHandler) Recommendations(c echo.Context) error {
	return serveRecommendations(c, h.recUC)
}

// Create handles the admin create request.
func (h *PerfumeHandler) Create(c echo.Context) error {
	var req perfumeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid perfume input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	perfume, err := h.uc.CreatePerfume(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPerfumeView(perfume), "Perfume created successfully")
}

// Update handles the admin update request.
func (h *PerfumeHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req perfumeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid perfume input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	perfume, err := h.uc.UpdatePerfume(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPerfumeView(perfume), "Perfume updated successfully")
}

// Delete handles the admin delete request.
func (h *PerfumeHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePerfume(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Perfume deleted successfully")
}

// CheckStock reports whether the perfume has the requested quantity available.
func (h *PerfumeHandler) CheckStock(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil || quantity < 1 {
		return response.BadRequest(c, "VALIDATION_FAILED", "quantity must be a positive integer")
	}

	available, err := h.uc.CheckStock(c.Request().Context(), id, quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"available": available,
		"quantity":  quantity,
	}, "")
}

// parseIDParam parses the ':id' path parameter as a UUID. The returned error
// is an AppError rendered by the central error handler.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}
