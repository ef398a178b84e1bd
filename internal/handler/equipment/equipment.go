// File: internal/handler/equipment/equipment.go
package equipment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"inventario-lab/internal/api"
	"inventario-lab/internal/cache"
	"inventario-lab/internal/database"
	"inventario-lab/internal/service"
	"inventario-lab/internal/store"
	"inventario-lab/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listEquipment          = store.ListEquipment
	listAvailableEquipment = store.ListAvailableEquipment
	countAvailable         = store.CountAvailableEquipment
	getEquipmentByID       = store.GetEquipmentByID
	createEquipment        = service.CreateEquipment
	updateEquipment        = service.UpdateEquipment
	deleteEquipment        = service.DeleteEquipment
)

// countCacheTTL bounds staleness of the cached availability count
// between invalidations.
const countCacheTTL = 30 * time.Second

// @Summary     Listar equipos
// @Tags        equipos
// @Produce     json
// @Success     200 {array} model.Equipment
// @Failure     500 {object} api.ErrorResponse
// @Router      /equipos [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listEquipment(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     Listar equipos disponibles
// @Tags        equipos
// @Produce     json
// @Success     200 {array} model.Equipment
// @Failure     500 {object} api.ErrorResponse
// @Router      /equipos/disponibles [get]
func ListAvailableHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listAvailableEquipment(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// CountAvailableHandler serves the availability count through Redis:
// cache hit answers directly, a miss falls back to SQL and refills
// the key.
// @Summary     Contar equipos disponibles
// @Tags        equipos
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /equipos/disponibles/count [get]
func CountAvailableHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if n, err := rdb.Get(ctx, cache.KeyAvailableCount).Int(); err == nil {
			return c.JSON(http.StatusOK, api.CountResponse{Count: n})
		}

		count, err := countAvailable(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Set(ctx, cache.KeyAvailableCount, count, countCacheTTL)
		return c.JSON(http.StatusOK, api.CountResponse{Count: count})
	}
}

// @Summary     Obtener un equipo
// @Tags        equipos
// @Produce     json
// @Param       id path int true "ID del equipo"
// @Success     200 {object} model.Equipment
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /equipos/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ID de equipo inválido"})
		}
		eq, err := getEquipmentByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Equipo no encontrado"})
		}
		return c.JSON(http.StatusOK, eq)
	}
}

// @Summary     Crear un equipo
// @Tags        equipos
// @Accept      json
// @Produce     json
// @Param       equipo body api.CreateEquipmentRequest true "Equipo nuevo"
// @Success     201 {object} api.CreatedResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /equipos [post]
func CreateHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateEquipmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "datos de equipo inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		eq, err := createEquipment(c.Request().Context(), db, req.Nombre, req.Descripcion, req.Estado)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(wp, rdb, cache.KeyAvailableCount)
		return c.JSON(http.StatusCreated, api.CreatedResponse{ID: eq.ID, Message: "Equipo creado correctamente"})
	}
}

// @Summary     Actualizar un equipo
// @Tags        equipos
// @Accept      json
// @Produce     json
// @Param       id     path int true "ID del equipo"
// @Param       equipo body api.UpdateEquipmentRequest true "Datos del equipo"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /equipos/{id} [put]
func UpdateHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ID de equipo inválido"})
		}

		var req api.UpdateEquipmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "datos de equipo inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateEquipment(c.Request().Context(), db, id, req.Nombre, req.Descripcion, req.Estado); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Equipo no encontrado"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(wp, rdb, cache.KeyAvailableCount)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Equipo actualizado correctamente"})
	}
}

// @Summary     Eliminar un equipo
// @Tags        equipos
// @Produce     json
// @Param       id path int true "ID del equipo"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /equipos/{id} [delete]
func DeleteHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ID de equipo inválido"})
		}

		if err := deleteEquipment(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Equipo no encontrado"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(wp, rdb, cache.KeyAvailableCount)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Equipo eliminado correctamente"})
	}
}
