// File: internal/handler/history/history.go
package history

import (
	"net/http"
	"strconv"

	"inventario-lab/internal/api"
	"inventario-lab/internal/database"
	"inventario-lab/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listRecentHistory      = store.ListRecentHistory
	listHistoryByEquipment = store.ListHistoryByEquipment
)

// defaultLimit caps the recent-history listing when the caller does
// not ask for a specific amount.
const defaultLimit = 50

// @Summary     Historial reciente
// @Description Cambios de estado más recientes de todos los equipos
// @Tags        historial
// @Produce     json
// @Param       limit query int false "Máximo de entradas" default(50)
// @Success     200 {array} model.HistoryEntry
// @Failure     500 {object} api.ErrorResponse
// @Router      /historial [get]
func RecentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := defaultLimit
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "limit inválido"})
			}
			limit = n
		}

		list, err := listRecentHistory(c.Request().Context(), db, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     Historial de un equipo
// @Tags        historial
// @Produce     json
// @Param       id path int true "ID del equipo"
// @Success     200 {array} model.HistoryEntry
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /historial/equipo/{id} [get]
func ByEquipmentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ID de equipo inválido"})
		}
		list, err := listHistoryByEquipment(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}
