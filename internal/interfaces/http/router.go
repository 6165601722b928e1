package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/Clientes-api/internal/application/clientes"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Clientes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	ClienteSvc clientes.ClienteService
	Logger     *logger.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(AccessLog(deps.Logger.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	clientesGroup := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteSvc)
	clientesGroup.Get("/", clienteHandler.List)
	clientesGroup.Post("/", clienteHandler.Create)
	clientesGroup.Get("/:id", clienteHandler.GetByID)
	clientesGroup.Put("/:id", clienteHandler.Update)
	clientesGroup.Delete("/:id", clienteHandler.Delete)
}
