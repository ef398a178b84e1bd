package store

import (
	"context"
	"fmt"
	"time"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateLoan(ctx context.Context, db database.Querier, l *model.Loan) (*model.Loan, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO prestamos
		   (equipo_id, usuario_id, fecha_prestamo, fecha_devolucion_esperada, motivo_prestamo, estado)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		l.EquipmentID,
		l.UserID,
		l.LoanedAt,
		l.ExpectedReturn,
		l.Motivo,
		l.Estado,
	)
	if err := row.Scan(&l.ID); err != nil {
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}
	return l, nil
}

// GetActiveLoanByID only sees loans still out. A returned or missing
// loan is the same pgx.ErrNoRows to the caller.
func GetActiveLoanByID(ctx context.Context, db database.Querier, loanID int) (*model.Loan, error) {
	row := db.QueryRow(ctx,
		`SELECT id, equipo_id, usuario_id, fecha_prestamo, fecha_devolucion_esperada,
		        fecha_devolucion_real, motivo_prestamo, estado
		 FROM prestamos WHERE id = $1 AND estado = $2`,
		loanID,
		model.PrestamoActivo,
	)
	l := &model.Loan{}
	if err := row.Scan(
		&l.ID,
		&l.EquipmentID,
		&l.UserID,
		&l.LoanedAt,
		&l.ExpectedReturn,
		&l.ReturnedAt,
		&l.Motivo,
		&l.Estado,
	); err != nil {
		return nil, fmt.Errorf("GetActiveLoanByID: %w", err)
	}
	return l, nil
}

func CloseLoan(ctx context.Context, db database.Querier, loanID int, returnedAt time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE prestamos SET estado = $1, fecha_devolucion_real = $2
		 WHERE id = $3`,
		model.PrestamoDevuelto,
		returnedAt,
		loanID,
	)
	if err != nil {
		return fmt.Errorf("CloseLoan: %w", err)
	}
	return nil
}

const loanListQuery = `SELECT p.id, p.equipo_id, p.usuario_id, p.fecha_prestamo,
       p.fecha_devolucion_esperada, p.fecha_devolucion_real, p.motivo_prestamo, p.estado,
       e.nombre, u.nombre_completo
  FROM prestamos p
  JOIN equipos e ON e.id = p.equipo_id
  JOIN usuarios u ON u.id = p.usuario_id`

func scanLoans(rows pgx.Rows) ([]model.Loan, error) {
	defer rows.Close()

	var list []model.Loan
	for rows.Next() {
		var l model.Loan
		if err := rows.Scan(
			&l.ID,
			&l.EquipmentID,
			&l.UserID,
			&l.LoanedAt,
			&l.ExpectedReturn,
			&l.ReturnedAt,
			&l.Motivo,
			&l.Estado,
			&l.EquipmentName,
			&l.UserName,
		); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func ListLoans(ctx context.Context, db database.Querier) ([]model.Loan, error) {
	rows, err := db.Query(ctx, loanListQuery+` ORDER BY p.fecha_prestamo DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListLoans: %w", err)
	}
	list, err := scanLoans(rows)
	if err != nil {
		return nil, fmt.Errorf("ListLoans: %w", err)
	}
	return list, nil
}

func ListLoansByUser(ctx context.Context, db database.Querier, userID int) ([]model.Loan, error) {
	rows, err := db.Query(ctx,
		loanListQuery+` WHERE p.usuario_id = $1 ORDER BY p.fecha_prestamo DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListLoansByUser: %w", err)
	}
	list, err := scanLoans(rows)
	if err != nil {
		return nil, fmt.Errorf("ListLoansByUser: %w", err)
	}
	return list, nil
}
