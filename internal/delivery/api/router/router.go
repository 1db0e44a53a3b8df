// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pizzeria/config"
	"pizzeria/internal/delivery/api/middleware"
	"pizzeria/internal/delivery/api/router/handler"
	"pizzeria/internal/domain/entity"
	"pizzeria/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoreHandler      *handler.StoreHandler
	MenuHandler       *handler.MenuHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	StaffOrderHandler *handler.StaffOrderHandler
	DeviceHandler     *handler.DeviceHandler
	StaffAuthHandler  *handler.StaffAuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Recorder `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	storeHandler      *handler.StoreHandler
	menuHandler       *handler.MenuHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	staffOrderHandler *handler.StaffOrderHandler
	deviceHandler     *handler.DeviceHandler
	staffAuthHandler  *handler.StaffAuthHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storeHandler:      params.StoreHandler,
		menuHandler:       params.MenuHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		staffOrderHandler: params.StaffOrderHandler,
		deviceHandler:     params.DeviceHandler,
		staffAuthHandler:  params.StaffAuthHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth/staff")
	{
		authGroup.POST("/login", r.staffAuthHandler.Login)
		authGroup.POST("/refresh", r.staffAuthHandler.Refresh)
		authGroup.POST("/logout", r.staffAuthHandler.Logout)
	}

	apiV1 := e.Group("/api/v1")

	storeGroup := apiV1.Group("/store")
	{
		storeGroup.GET("/status", r.storeHandler.GetStatus)
		storeGroup.GET("/status/stream", r.storeHandler.StreamStatus)
		storeGroup.GET("/hours", r.storeHandler.GetHours)
		storeGroup.GET("/interaction", r.storeHandler.GetInteraction)
	}

	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListMenu)
		menuGroup.GET("/:id", r.menuHandler.GetMenuItem)
	}

	cartsGroup := apiV1.Group("/carts/:cartId")
	{
		cartsGroup.GET("", r.cartHandler.GetCart)
		cartsGroup.DELETE("", r.cartHandler.ClearCart)
		cartsGroup.POST("/items", r.cartHandler.AddItem)
		cartsGroup.PUT("/items/:menuItemId", r.cartHandler.UpdateItem)
		cartsGroup.DELETE("/items/:menuItemId", r.cartHandler.RemoveItem)
	}

	apiV1.GET("/checkout/preflight", r.orderHandler.Preflight)

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/items", r.orderHandler.GetOrderItems)
		ordersGroup.GET("/:id/track", r.orderHandler.Track)
		ordersGroup.GET("/:id/qr", r.orderHandler.TrackingQR)
		ordersGroup.POST("/:id/confirm-delivery", r.orderHandler.ConfirmDelivery)
		ordersGroup.GET("/:id/review", r.orderHandler.GetReview)
		ordersGroup.POST("/:id/review", r.orderHandler.SubmitReview)
	}

	devicesGroup := apiV1.Group("/customers/:id/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetDevices)
		devicesGroup.DELETE("/:deviceId", r.deviceHandler.DeactivateDevice)
	}

	// Both dashboard variants may run the store and its orders.
	staffGroup := apiV1.Group("/staff")
	staffGroup.Use(r.authMiddleware.Authenticate)
	staffGroup.Use(r.authMiddleware.RequireRole(entity.RoleStaff, entity.RoleManager))
	{
		staffGroup.POST("/store/toggle", r.storeHandler.Toggle)
		staffGroup.GET("/orders", r.staffOrderHandler.ListOrders)
		staffGroup.GET("/orders/stream", r.staffOrderHandler.Stream)
		staffGroup.POST("/orders/:id/advance", r.staffOrderHandler.Advance)
		staffGroup.PUT("/orders/:id/status", r.staffOrderHandler.UpdateStatus)
		staffGroup.POST("/orders/:id/cancel", r.staffOrderHandler.Cancel)
		staffGroup.POST("/orders/:id/payment", r.staffOrderHandler.ConfirmPayment)
	}
}
