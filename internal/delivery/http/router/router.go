// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parfum/internal/delivery/http/middleware"
	"parfum/internal/delivery/http/router/handler"
	"parfum/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	PerfumeHandler     *handler.PerfumeHandler
	OrderHandler       *handler.OrderHandler
	ReviewHandler      *handler.ReviewHandler
	PreferencesHandler *handler.PreferencesHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	perfumeHandler     *handler.PerfumeHandler
	orderHandler       *handler.OrderHandler
	reviewHandler      *handler.ReviewHandler
	preferencesHandler *handler.PreferencesHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		perfumeHandler:     params.PerfumeHandler,
		orderHandler:       params.OrderHandler,
		reviewHandler:      params.ReviewHandler,
		preferencesHandler: params.PreferencesHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Account routes
	userGroup := e.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
	}

	// Catalog routes; browse is public, mutation is admin-only
	perfumeGroup := e.Group("/parfume")
	{
		perfumeGroup.GET("", r.perfumeHandler.List)
		perfumeGroup.GET("/:id", r.perfumeHandler.Get)
		perfumeGroup.GET("/:id/similar", r.perfumeHandler.Similar)
		perfumeGroup.GET("/for-you/recommendations", r.perfumeHandler.Recommendations, authenticate)

		perfumeGroup.POST("", r.perfumeHandler.Create, authenticate, requireAdmin)
		perfumeGroup.PATCH("/:id", r.perfumeHandler.Update, authenticate, requireAdmin)
		perfumeGroup.DELETE("/:id", r.perfumeHandler.Delete, authenticate, requireAdmin)
		perfumeGroup.GET("/:id/stock/:quantity", r.perfumeHandler.CheckStock, authenticate, requireAdmin)
	}

	// Quiz and preference routes
	preferencesGroup := e.Group("/preferences")
	{
		preferencesGroup.GET("/quiz", r.preferencesHandler.QuizQuestions)
		preferencesGroup.POST("/quiz", r.preferencesHandler.SubmitQuiz, authenticate)
		preferencesGroup.GET("", r.preferencesHandler.GetPreferences, authenticate)
		preferencesGroup.PATCH("", r.preferencesHandler.UpdatePreferences, authenticate)
		preferencesGroup.GET("/recommendations", r.preferencesHandler.Recommendations, authenticate)
	}

	// Review routes
	reviewGroup := e.Group("/review")
	{
		reviewGroup.GET("/perfume/:id", r.reviewHandler.List)
		reviewGroup.POST("/perfume/:id", r.reviewHandler.Submit, authenticate)
		reviewGroup.DELETE("/perfume/:id", r.reviewHandler.Delete, authenticate)
	}

	// Order routes
	orderGroup := e.Group("/order")
	{
		orderGroup.GET("", r.orderHandler.ListAll, authenticate, requireAdmin)
		orderGroup.POST("", r.orderHandler.Place, authenticate)
		orderGroup.POST("/guest", r.orderHandler.PlaceGuest)
		orderGroup.GET("/my", r.orderHandler.ListMine, authenticate)
		orderGroup.GET("/:id/qrcode", r.orderHandler.PickupQR, authenticate, requireAdmin)
	}
}
