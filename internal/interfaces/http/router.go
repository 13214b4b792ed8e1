package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/auth"
	"github.com/aqualife/aqualife-api/internal/application/inventory"
	"github.com/aqualife/aqualife-api/internal/application/orders"
	"github.com/aqualife/aqualife-api/internal/application/registration"
	"github.com/aqualife/aqualife-api/internal/application/stats"
	"github.com/aqualife/aqualife-api/internal/application/usecase"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterUC  *registration.UseCase
	LoginUC     *auth.UseCase
	InventorySv *inventory.Service
	StatsUC     *stats.UseCase
	OrdersUC    *orders.UseCase
	ConfigUC    *usecase.ConfigUseCase
	CustomerUC  *usecase.CustomerUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.RegisterUC, deps.LoginUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-strength", authHandler.PasswordStrength)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario de sesión (protegido; solo personal interno)
	invGroup := protected.Group("/inventario", RequireTipo(entity.TipoAdmin, entity.TipoUsuario))
	inventoryHandler := NewInventoryHandler(deps.InventorySv)
	invGroup.Get("/", inventoryHandler.State)
	invGroup.Get("/historial", inventoryHandler.History)
	invGroup.Post("/ingreso", inventoryHandler.AddStock)
	invGroup.Post("/insumos", inventoryHandler.UpdateCapsAndSeals)
	invGroup.Post("/mantenimiento", inventoryHandler.RegisterMaintenance)

	// Pedidos (protegido; los clientes solo ven los suyos)
	pedidos := protected.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrdersUC)
	pedidos.Post("/", orderHandler.Create)
	pedidos.Get("/", orderHandler.List)
	pedidos.Get("/:id/recibo", orderHandler.Receipt)
	pedidos.Put("/:id/estado", RequireTipo(entity.TipoAdmin, entity.TipoUsuario), orderHandler.UpdateEstado)
	pedidos.Post("/:id/cobro", RequireTipo(entity.TipoAdmin), orderHandler.RegisterCharge)

	// Clientes (protegido; solo admin)
	clientes := protected.Group("/clientes", RequireTipo(entity.TipoAdmin))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	clientes.Get("/", customerHandler.List)
	clientes.Put("/:id/activo", customerHandler.SetActive)

	// Usuarios internos (protegido; solo admin)
	usuarios := protected.Group("/usuarios", RequireTipo(entity.TipoAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Put("/:id/activo", userHandler.SetActive)
	usuarios.Delete("/:id", userHandler.Delete)

	// Estadísticas (protegido; solo admin)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/estadisticas", RequireTipo(entity.TipoAdmin), statsHandler.Get)

	// Configuración global de precios (protegido)
	cfg := protected.Group("/config/botellon")
	configHandler := NewConfigHandler(deps.ConfigUC)
	cfg.Get("/", configHandler.Get)
	cfg.Put("/", RequireTipo(entity.TipoAdmin), configHandler.Update)
	cfg.Get("/historial", RequireTipo(entity.TipoAdmin), configHandler.History)
}
