// File: internal/webapp/client.go
package webapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"inventario-lab/internal/api"
	"inventario-lab/internal/model"
)

// apiTimeout bounds every call to the API service.
const apiTimeout = 10 * time.Second

// Client is the typed HTTP client the front end uses against the API
// service. Transport failures fold into user-facing messages; non-2xx
// responses surface the API's own error message.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: apiTimeout},
	}
}

func (c *Client) do(method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return errors.New("Timeout en la conexión con la API")
		}
		return errors.New("No se puede conectar con la API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("HTTP %d de la API", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Login(username, password string) (*api.LoginResponse, error) {
	var out api.LoginResponse
	err := c.do(http.MethodPost, "/login", api.LoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Equipos() ([]model.Equipment, error) {
	var out []model.Equipment
	err := c.do(http.MethodGet, "/equipos", nil, &out)
	return out, err
}

func (c *Client) EquiposDisponibles() ([]model.Equipment, error) {
	var out []model.Equipment
	err := c.do(http.MethodGet, "/equipos/disponibles", nil, &out)
	return out, err
}

func (c *Client) CrearEquipo(nombre, descripcion, estado string) error {
	return c.do(http.MethodPost, "/equipos", api.CreateEquipmentRequest{
		Nombre:      nombre,
		Descripcion: descripcion,
		Estado:      estado,
	}, nil)
}

func (c *Client) EliminarEquipo(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/equipos/%d", id), nil, nil)
}

func (c *Client) PrestamosUsuario(userID int) ([]model.Loan, error) {
	var out []model.Loan
	err := c.do(http.MethodGet, fmt.Sprintf("/prestamos/usuario/%d", userID), nil, &out)
	return out, err
}

func (c *Client) CrearPrestamo(equipoID, usuarioID int, motivo string) error {
	return c.do(http.MethodPost, "/prestamos", api.CreateLoanRequest{
		EquipoID:  equipoID,
		UsuarioID: usuarioID,
		Motivo:    motivo,
	}, nil)
}

func (c *Client) DevolverPrestamo(id int) error {
	return c.do(http.MethodPut, fmt.Sprintf("/prestamos/%d/devolver", id), nil, nil)
}

func (c *Client) Historial() ([]model.HistoryEntry, error) {
	var out []model.HistoryEntry
	err := c.do(http.MethodGet, "/historial", nil, &out)
	return out, err
}

func (c *Client) HistorialEquipo(equipoID int) ([]model.HistoryEntry, error) {
	var out []model.HistoryEntry
	err := c.do(http.MethodGet, fmt.Sprintf("/historial/equipo/%d", equipoID), nil, &out)
	return out, err
}
