package store

import (
	"context"
	"fmt"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"
)

// GetUserByCredentials matches an active user on username and the
// stored opaque password value. No match surfaces as pgx.ErrNoRows.
func GetUserByCredentials(ctx context.Context, db database.Querier, username, password string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, nombre_completo, tipo_usuario, activo
		 FROM usuarios WHERE username = $1 AND password = $2 AND activo = TRUE`,
		username,
		password,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FullName,
		&u.Role,
		&u.Active,
	); err != nil {
		return nil, fmt.Errorf("GetUserByCredentials: %w", err)
	}
	return u, nil
}

func GetActiveUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, nombre_completo, tipo_usuario, activo
		 FROM usuarios WHERE id = $1 AND activo = TRUE`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FullName,
		&u.Role,
		&u.Active,
	); err != nil {
		return nil, fmt.Errorf("GetActiveUserByID: %w", err)
	}
	return u, nil
}
