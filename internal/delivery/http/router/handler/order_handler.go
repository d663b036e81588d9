package handler

import (
	"log/slog"
	"net/http"

	"parfum/internal/delivery/http/middleware"
	"parfum/internal/delivery/http/response"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderRequest struct {
	PerfumeID string `json:"perfumeId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Message   string `json:"message"`
	Address   string `json:"address"`
}

type guestOrderRequest struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	PerfumeID     string `json:"perfumeId" validate:"required"`
}

// Place handles the authenticated order request.
func (h *OrderHandler) Place(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	perfumeID, err := uuid.Parse(req.PerfumeID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("perfumeId must be a valid UUID")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		PerfumeID: perfumeID,
		Quantity:  req.Quantity,
		Message:   req.Message,
		Address:   req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// PlaceGuest handles the deprecated unauthenticated order request.
func (h *OrderHandler) PlaceGuest(c echo.Context) error {
	var req guestOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	perfumeID, err := uuid.Parse(req.PerfumeID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("perfumeId must be a valid UUID")
	}

	order, err := h.uc.CreateGuestOrder(c.Request().Context(), &usecase.GuestOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PerfumeID:     perfumeID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// ListAll returns every order. Admin only; the router enforces the role.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// ListMine returns the authenticated user's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated user")
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "")
}

// PickupQR streams the order's pickup QR code as a PNG image.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.OrderPickupQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
