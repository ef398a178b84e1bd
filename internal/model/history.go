// File: internal/model/history.go
package model

import "time"

// HistoryEntry is an immutable audit record of one equipment state
// transition. Entries are append-only; nothing updates or deletes them.
type HistoryEntry struct {
	ID          int       `db:"id" json:"id"`
	EquipmentID int       `db:"equipo_id" json:"equipo_id"`
	PriorState  string    `db:"estado_anterior" json:"estado_anterior"`
	NewState    string    `db:"estado_nuevo" json:"estado_nuevo"`
	UserID      *int      `db:"usuario_responsable" json:"usuario_responsable,omitempty"`
	Motivo      string    `db:"motivo" json:"motivo"`
	ChangedAt   time.Time `db:"fecha_cambio" json:"fecha_cambio"`
}
