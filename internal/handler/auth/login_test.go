package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"
	"inventario-lab/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (v stubValidator) Validate(any) error { return v.err }

func newJSONCtx(method, target, body string, v echo.Validator) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = v
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler(t *testing.T) {
	restore := func() { getUserByCredentials = store.GetUserByCredentials }

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByCredentials = func(_ context.Context, _ database.Querier, username, password string) (*model.User, error) {
			require.Equal(t, "jperez", username)
			require.Equal(t, "usuario123", password)
			return &model.User{ID: 2, Username: "jperez", FullName: "Juan Pérez", Role: model.RoleStandard}, nil
		}
		c, rec := newJSONCtx(http.MethodPost, "/login",
			`{"username":"jperez","password":"usuario123"}`, stubValidator{})

		require.NoError(t, LoginHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"success":true`)
		require.Contains(t, rec.Body.String(), "Login exitoso")
		require.Contains(t, rec.Body.String(), "Juan Pérez")
	})

	t.Run("wrong credentials", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByCredentials = func(context.Context, database.Querier, string, string) (*model.User, error) {
			return nil, echo.ErrUnauthorized
		}
		c, rec := newJSONCtx(http.MethodPost, "/login",
			`{"username":"jperez","password":"wrong"}`, stubValidator{})

		require.NoError(t, LoginHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Usuario o contraseña incorrectos")
	})

	t.Run("malformed body", func(t *testing.T) {
		c, rec := newJSONCtx(http.MethodPost, "/login", `{`, stubValidator{})
		require.NoError(t, LoginHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		c, rec := newJSONCtx(http.MethodPost, "/login", `{}`, stubValidator{err: echo.ErrBadRequest})
		require.NoError(t, LoginHandler(&database.FakeDB{})(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
