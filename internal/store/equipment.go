package store

import (
	"context"
	"fmt"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"
)

func GetEquipmentByID(ctx context.Context, db database.Querier, equipmentID int) (*model.Equipment, error) {
	row := db.QueryRow(ctx,
		`SELECT id, nombre, descripcion, estado, created_at
		 FROM equipos WHERE id = $1`,
		equipmentID,
	)
	e := &model.Equipment{}
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Estado,
		&e.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetEquipmentByID: %w", err)
	}
	return e, nil
}

func ListEquipment(ctx context.Context, db database.Querier) ([]model.Equipment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, nombre, descripcion, estado, created_at
		 FROM equipos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEquipment: %w", err)
	}
	defer rows.Close()

	var list []model.Equipment
	for rows.Next() {
		var e model.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Estado, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListEquipment: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEquipment: %w", err)
	}
	return list, nil
}

func ListAvailableEquipment(ctx context.Context, db database.Querier) ([]model.Equipment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, nombre, descripcion, estado, created_at
		 FROM equipos WHERE estado = $1 ORDER BY id`,
		model.EstadoDisponible,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAvailableEquipment: %w", err)
	}
	defer rows.Close()

	var list []model.Equipment
	for rows.Next() {
		var e model.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Estado, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListAvailableEquipment: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAvailableEquipment: %w", err)
	}
	return list, nil
}

func CountAvailableEquipment(ctx context.Context, db database.Querier) (int, error) {
	var count int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM equipos WHERE estado = $1`,
		model.EstadoDisponible,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountAvailableEquipment: %w", err)
	}
	return count, nil
}

func CreateEquipment(ctx context.Context, db database.Querier, e *model.Equipment) (*model.Equipment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO equipos (nombre, descripcion, estado)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		e.Name,
		e.Description,
		e.Estado,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateEquipment: %w", err)
	}
	return e, nil
}

func UpdateEquipment(ctx context.Context, db database.Querier, e *model.Equipment) error {
	_, err := db.Exec(ctx,
		`UPDATE equipos SET nombre = $1, descripcion = $2, estado = $3
		 WHERE id = $4`,
		e.Name,
		e.Description,
		e.Estado,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateEquipment: %w", err)
	}
	return nil
}

func DeleteEquipment(ctx context.Context, db database.Querier, equipmentID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM equipos WHERE id = $1`,
		equipmentID,
	)
	if err != nil {
		return fmt.Errorf("DeleteEquipment: %w", err)
	}
	return nil
}

// MarkEquipmentPrestado flips the state to prestado only when it is
// still disponible, so two concurrent loan requests cannot both win.
// Reports whether a row actually changed.
func MarkEquipmentPrestado(ctx context.Context, db database.Querier, equipmentID int) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE equipos SET estado = $1
		 WHERE id = $2 AND estado = $3`,
		model.EstadoPrestado,
		equipmentID,
		model.EstadoDisponible,
	)
	if err != nil {
		return false, fmt.Errorf("MarkEquipmentPrestado: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func MarkEquipmentDisponible(ctx context.Context, db database.Querier, equipmentID int) error {
	_, err := db.Exec(ctx,
		`UPDATE equipos SET estado = $1 WHERE id = $2`,
		model.EstadoDisponible,
		equipmentID,
	)
	if err != nil {
		return fmt.Errorf("MarkEquipmentDisponible: %w", err)
	}
	return nil
}
