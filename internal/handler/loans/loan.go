// File: internal/handler/loans/loan.go
package loans

import (
	"errors"
	"net/http"
	"strconv"

	"inventario-lab/internal/api"
	"inventario-lab/internal/cache"
	"inventario-lab/internal/database"
	"inventario-lab/internal/service"
	"inventario-lab/internal/store"
	"inventario-lab/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listLoans       = store.ListLoans
	listLoansByUser = store.ListLoansByUser
	createLoan      = service.CreateLoan
	returnLoan      = service.ReturnLoan
)

// @Summary     Listar préstamos
// @Description Todos los préstamos con nombres de equipo y usuario, más recientes primero
// @Tags        prestamos
// @Produce     json
// @Success     200 {array} model.Loan
// @Failure     500 {object} api.ErrorResponse
// @Router      /prestamos [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listLoans(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// @Summary     Listar préstamos de un usuario
// @Tags        prestamos
// @Produce     json
// @Param       id path int true "ID del usuario"
// @Success     200 {array} model.Loan
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /prestamos/usuario/{id} [get]
func ListByUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ID de usuario inválido"})
		}
		list, err := listLoansByUser(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

// CreateHandler checks equipment out to a user. Unavailable equipment
// answers 400 with the exact message the front end shows.
// @Summary     Crear un préstamo
// @Tags        prestamos
// @Accept      json
// @Produce     json
// @Param       prestamo body api.CreateLoanRequest true "Préstamo"
// @Success     201 {object} api.CreatedResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /prestamos [post]
func CreateHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateLoanRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "datos de préstamo inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		loan, err := createLoan(c.Request().Context(), db, req.EquipoID, req.UsuarioID, req.Motivo)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			case errors.Is(err, service.ErrNotAvailable):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: service.ErrNotAvailable.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		cache.InvalidateAsync(wp, rdb, cache.KeyAvailableCount)
		return c.JSON(http.StatusCreated, api.CreatedResponse{ID: loan.ID, Message: "Préstamo registrado correctamente"})
	}
}

// @Summary     Devolver un préstamo
// @Description Cierra un préstamo activo y libera el equipo
// @Tags        prestamos
// @Produce     json
// @Param       id path int true "ID del préstamo"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /prestamos/{id}/devolver [put]
func ReturnHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ID de préstamo inválido"})
		}

		if err := returnLoan(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Préstamo activo no encontrado"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		cache.InvalidateAsync(wp, rdb, cache.KeyAvailableCount)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Equipo devuelto correctamente"})
	}
}
