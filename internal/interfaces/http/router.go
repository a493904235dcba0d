package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ilogush/backoffice-api/internal/application/auth"
	"github.com/ilogush/backoffice-api/internal/application/realization"
	"github.com/ilogush/backoffice-api/internal/application/receiving"
	"github.com/ilogush/backoffice-api/internal/application/reports"
	"github.com/ilogush/backoffice-api/internal/application/stock"
	"github.com/ilogush/backoffice-api/internal/application/usecase"
	"github.com/ilogush/backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC       *stock.Usecase
	ProductUC     *usecase.ProductUseCase
	ColorUC       *usecase.ColorUseCase
	OrderUC       *usecase.OrderUseCase
	ReceivingUC   *receiving.Usecase
	RealizationUC *realization.Usecase
	ReportsUC     *reports.Usecase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo admin)
	protected.Get("/users", RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	// Existencias (cualquier rol autenticado)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock", stockHandler.Available)

	// Colores (catálogo de referencia)
	colors := protected.Group("/colors")
	colorHandler := NewColorHandler(deps.ColorUC)
	colors.Get("/", colorHandler.List)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Update)

	// Recepciones de mercancía (bodega)
	receipts := protected.Group("/receipts", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	receiptHandler := NewReceiptHandler(deps.ReceivingUC)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)

	// Salidas de mercancía (bodega)
	realizations := protected.Group("/realizations", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	realizationHandler := NewRealizationHandler(deps.RealizationUC)
	realizations.Post("/", realizationHandler.Create)
	realizations.Get("/", realizationHandler.List)
	realizations.Get("/:id", realizationHandler.GetByID)

	// Pedidos (ventas)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/stock", reportHandler.StockPDF)
}
