package webapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventario-lab/internal/api"
	"inventario-lab/internal/model"

	"github.com/stretchr/testify/require"
)

func TestClientLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/login", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req api.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "jperez", req.Username)

			json.NewEncoder(w).Encode(api.LoginResponse{
				Success: true,
				Message: "Login exitoso",
				User:    api.UserResponse{ID: 2, Username: "jperez", FullName: "Juan Pérez", Role: "standard"},
			})
		}))
		defer ts.Close()

		resp, err := NewClient(ts.URL).Login("jperez", "usuario123")
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Equal(t, "Juan Pérez", resp.User.FullName)
	})

	t.Run("API error message surfaces as-is", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(api.ErrorResponse{Message: "Usuario o contraseña incorrectos"})
		}))
		defer ts.Close()

		_, err := NewClient(ts.URL).Login("jperez", "wrong")
		require.EqualError(t, err, "Usuario o contraseña incorrectos")
	})

	t.Run("non-JSON error body falls back to status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer ts.Close()

		_, err := NewClient(ts.URL).Login("jperez", "x")
		require.EqualError(t, err, "HTTP 502 de la API")
	})
}

func TestClientTransportErrors(t *testing.T) {
	t.Run("unreachable API", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		ts.Close()

		_, err := NewClient(ts.URL).Equipos()
		require.EqualError(t, err, "No se puede conectar con la API")
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
		}))
		defer ts.Close()

		c := NewClient(ts.URL)
		c.httpc.Timeout = 20 * time.Millisecond
		_, err := c.Equipos()
		require.EqualError(t, err, "Timeout en la conexión con la API")
	})
}

func TestClientEquipos(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/equipos", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Equipment{
			{ID: 1, Name: "Microscopio", Estado: "disponible"},
			{ID: 2, Name: "Balanza", Estado: "prestado"},
		})
	}))
	defer ts.Close()

	list, err := NewClient(ts.URL).Equipos()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Balanza", list[1].Name)
}

func TestClientCrearPrestamo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/prestamos", r.URL.Path)

		var req api.CreateLoanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 3, req.EquipoID)
		require.Equal(t, 7, req.UsuarioID)
		require.Equal(t, "tesis", req.Motivo)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.CreatedResponse{ID: 12, Message: "Préstamo registrado correctamente"})
	}))
	defer ts.Close()

	require.NoError(t, NewClient(ts.URL).CrearPrestamo(3, 7, "tesis"))
}

func TestClientDevolverPrestamo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/prestamos/12/devolver", r.URL.Path)
		json.NewEncoder(w).Encode(api.MessageResponse{Message: "Equipo devuelto correctamente"})
	}))
	defer ts.Close()

	require.NoError(t, NewClient(ts.URL).DevolverPrestamo(12))
}
