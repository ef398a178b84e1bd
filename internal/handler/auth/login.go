// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"inventario-lab/internal/api"
	"inventario-lab/internal/database"
	"inventario-lab/internal/store"

	"github.com/labstack/echo/v4"
)

var getUserByCredentials = store.GetUserByCredentials

// LoginHandler matches username and password against active users.
// The stored password is an opaque value compared as-is; there is no
// token model, the caller gets the user record back.
// @Summary     Iniciar sesión
// @Description Valida usuario y contraseña contra los usuarios activos
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body api.LoginRequest true "Credenciales"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "datos de acceso inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByCredentials(c.Request().Context(), db, req.Username, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Usuario o contraseña incorrectos"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Success: true,
			Message: "Login exitoso",
			User: api.UserResponse{
				ID:       user.ID,
				Username: user.Username,
				FullName: user.FullName,
				Role:     user.Role,
			},
		})
	}
}
