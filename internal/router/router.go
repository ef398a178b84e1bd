// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"inventario-lab/internal/cache"
	"inventario-lab/internal/database"
	"inventario-lab/internal/handler"
	"inventario-lab/internal/handler/auth"
	"inventario-lab/internal/handler/equipment"
	"inventario-lab/internal/handler/history"
	"inventario-lab/internal/handler/loans"
	"inventario-lab/internal/worker"
)

// Setup registers every route. Paths carry no prefix; the web front
// end calls them directly.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	e.GET("/ping", handler.PingHandler(db))

	e.POST("/login", auth.LoginHandler(db))

	e.GET("/equipos", equipment.ListHandler(db))
	e.POST("/equipos", equipment.CreateHandler(db, rdb, wp))
	e.GET("/equipos/disponibles", equipment.ListAvailableHandler(db))
	e.GET("/equipos/disponibles/count", equipment.CountAvailableHandler(db, rdb))
	e.GET("/equipos/:id", equipment.GetHandler(db))
	e.PUT("/equipos/:id", equipment.UpdateHandler(db, rdb, wp))
	e.DELETE("/equipos/:id", equipment.DeleteHandler(db, rdb, wp))

	e.GET("/prestamos", loans.ListHandler(db))
	e.POST("/prestamos", loans.CreateHandler(db, rdb, wp))
	e.GET("/prestamos/usuario/:id", loans.ListByUserHandler(db))
	e.PUT("/prestamos/:id/devolver", loans.ReturnHandler(db, rdb, wp))

	e.GET("/historial", history.RecentHandler(db))
	e.GET("/historial/equipo/:id", history.ByEquipmentHandler(db))
}
