package store

import (
	"context"
	"fmt"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"
)

// InsertHistory appends one audit entry. Nothing ever updates or
// deletes rows in historial_equipos.
func InsertHistory(ctx context.Context, db database.Querier, h *model.HistoryEntry) error {
	row := db.QueryRow(ctx,
		`INSERT INTO historial_equipos
		   (equipo_id, estado_anterior, estado_nuevo, usuario_responsable, motivo)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, fecha_cambio`,
		h.EquipmentID,
		h.PriorState,
		h.NewState,
		h.UserID,
		h.Motivo,
	)
	if err := row.Scan(&h.ID, &h.ChangedAt); err != nil {
		return fmt.Errorf("InsertHistory: %w", err)
	}
	return nil
}

func ListRecentHistory(ctx context.Context, db database.Querier, limit int) ([]model.HistoryEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT id, equipo_id, estado_anterior, estado_nuevo, usuario_responsable, motivo, fecha_cambio
		 FROM historial_equipos ORDER BY fecha_cambio DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentHistory: %w", err)
	}
	defer rows.Close()

	var list []model.HistoryEntry
	for rows.Next() {
		var h model.HistoryEntry
		if err := rows.Scan(&h.ID, &h.EquipmentID, &h.PriorState, &h.NewState, &h.UserID, &h.Motivo, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("ListRecentHistory: %w", err)
		}
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentHistory: %w", err)
	}
	return list, nil
}

func ListHistoryByEquipment(ctx context.Context, db database.Querier, equipmentID int) ([]model.HistoryEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT id, equipo_id, estado_anterior, estado_nuevo, usuario_responsable, motivo, fecha_cambio
		 FROM historial_equipos WHERE equipo_id = $1 ORDER BY fecha_cambio DESC`,
		equipmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListHistoryByEquipment: %w", err)
	}
	defer rows.Close()

	var list []model.HistoryEntry
	for rows.Next() {
		var h model.HistoryEntry
		if err := rows.Scan(&h.ID, &h.EquipmentID, &h.PriorState, &h.NewState, &h.UserID, &h.Motivo, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("ListHistoryByEquipment: %w", err)
		}
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListHistoryByEquipment: %w", err)
	}
	return list, nil
}
