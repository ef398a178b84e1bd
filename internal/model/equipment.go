// File: internal/model/equipment.go
package model

import "time"

// Equipment is a trackable lab asset. Estado is the single source of
// truth for availability; besides the well-known states below, admins
// may set arbitrary free-text states.
type Equipment struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"nombre" json:"nombre"`
	Description string    `db:"descripcion" json:"descripcion"`
	Estado      string    `db:"estado" json:"estado"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Well-known equipment states. EstadoNuevo and EstadoEliminado are
// sentinels that only ever appear in the history trail.
const (
	EstadoDisponible = "disponible"
	EstadoPrestado   = "prestado"
	EstadoNuevo      = "nuevo"
	EstadoEliminado  = "eliminado"
)
