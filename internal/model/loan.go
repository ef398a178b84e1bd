// File: internal/model/loan.go
package model

import "time"

// Loan assigns one equipment unit to one user for a bounded period.
// At most one active loan may reference a given equipment; the
// equipment state gate enforces this, not a table constraint.
type Loan struct {
	ID             int        `db:"id" json:"id"`
	EquipmentID    int        `db:"equipo_id" json:"equipo_id"`
	UserID         int        `db:"usuario_id" json:"usuario_id"`
	LoanedAt       time.Time  `db:"fecha_prestamo" json:"fecha_prestamo"`
	ExpectedReturn time.Time  `db:"fecha_devolucion_esperada" json:"fecha_devolucion_esperada"`
	ReturnedAt     *time.Time `db:"fecha_devolucion_real" json:"fecha_devolucion_real,omitempty"`
	Motivo         string     `db:"motivo_prestamo" json:"motivo_prestamo"`
	Estado         string     `db:"estado" json:"estado"`

	// Display names filled in by the list queries.
	EquipmentName string `db:"equipo_nombre" json:"equipo_nombre,omitempty"`
	UserName      string `db:"usuario_nombre" json:"usuario_nombre,omitempty"`
}

// Loan states.
const (
	PrestamoActivo   = "activo"
	PrestamoDevuelto = "devuelto"
)

// LoanPeriod is how long a loan runs before it is expected back.
const LoanPeriod = 7 * 24 * time.Hour
