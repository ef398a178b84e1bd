// File: internal/service/equipment.go
package service

import (
	"context"
	"errors"
	"fmt"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"
	"inventario-lab/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getEquipmentByID = store.GetEquipmentByID
	createEquipment  = store.CreateEquipment
	updateEquipment  = store.UpdateEquipment
	deleteEquipment  = store.DeleteEquipment
	recordHistory    = RecordHistory
)

// CreateEquipment persists a new equipment row and logs the
// nuevo -> initial-state transition, all in one transaction.
func CreateEquipment(ctx context.Context, db database.DB, name, description, estado string) (*model.Equipment, error) {
	if estado == "" {
		estado = model.EstadoDisponible
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateEquipment: %w", err)
	}
	defer tx.Rollback(ctx)

	e, err := createEquipment(ctx, tx, &model.Equipment{
		Name:        name,
		Description: description,
		Estado:      estado,
	})
	if err != nil {
		return nil, fmt.Errorf("CreateEquipment: %w", err)
	}

	recordHistory(ctx, tx, &model.HistoryEntry{
		EquipmentID: e.ID,
		PriorState:  model.EstadoNuevo,
		NewState:    e.Estado,
		Motivo:      "Equipo creado: " + name,
	})

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateEquipment: %w", err)
	}
	return e, nil
}

// UpdateEquipment rewrites name, description and state. A state
// change additionally logs a history entry; same-state updates do not.
func UpdateEquipment(ctx context.Context, db database.DB, equipmentID int, name, description, estado string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdateEquipment: %w", err)
	}
	defer tx.Rollback(ctx)

	current, err := getEquipmentByID(ctx, tx, equipmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("equipo %d: %w", equipmentID, ErrNotFound)
		}
		return fmt.Errorf("UpdateEquipment: %w", err)
	}

	if err := updateEquipment(ctx, tx, &model.Equipment{
		ID:          equipmentID,
		Name:        name,
		Description: description,
		Estado:      estado,
	}); err != nil {
		return fmt.Errorf("UpdateEquipment: %w", err)
	}

	if estado != current.Estado {
		recordHistory(ctx, tx, &model.HistoryEntry{
			EquipmentID: equipmentID,
			PriorState:  current.Estado,
			NewState:    estado,
			Motivo:      "Equipo actualizado",
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateEquipment: %w", err)
	}
	return nil
}

// DeleteEquipment logs the terminal eliminado transition and then
// removes the row. Logging first keeps the audit entry even though
// the equipment row is about to disappear.
func DeleteEquipment(ctx context.Context, db database.DB, equipmentID int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("DeleteEquipment: %w", err)
	}
	defer tx.Rollback(ctx)

	current, err := getEquipmentByID(ctx, tx, equipmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("equipo %d: %w", equipmentID, ErrNotFound)
		}
		return fmt.Errorf("DeleteEquipment: %w", err)
	}

	recordHistory(ctx, tx, &model.HistoryEntry{
		EquipmentID: equipmentID,
		PriorState:  current.Estado,
		NewState:    model.EstadoEliminado,
		Motivo:      "Equipo eliminado del sistema",
	})

	if err := deleteEquipment(ctx, tx, equipmentID); err != nil {
		return fmt.Errorf("DeleteEquipment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeleteEquipment: %w", err)
	}
	return nil
}
