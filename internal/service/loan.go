// File: internal/service/loan.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"
	"inventario-lab/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	getActiveUserByID       = store.GetActiveUserByID
	createLoan              = store.CreateLoan
	getActiveLoanByID       = store.GetActiveLoanByID
	closeLoan               = store.CloseLoan
	markEquipmentPrestado   = store.MarkEquipmentPrestado
	markEquipmentDisponible = store.MarkEquipmentDisponible
	nowFunc                 = time.Now
)

// CreateLoan checks out equipment to a user. The loan insert, the
// disponible -> prestado flip and the history entry commit together
// or not at all. The flip is conditional on the state still being
// disponible, so a concurrent request that got there first turns this
// one into ErrNotAvailable instead of a double booking.
func CreateLoan(ctx context.Context, db database.DB, equipmentID, userID int, motivo string) (*model.Loan, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}
	defer tx.Rollback(ctx)

	eq, err := getEquipmentByID(ctx, tx, equipmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("equipo %d: %w", equipmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}
	if eq.Estado != model.EstadoDisponible {
		return nil, ErrNotAvailable
	}

	user, err := getActiveUserByID(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("usuario %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}

	now := nowFunc()
	loan, err := createLoan(ctx, tx, &model.Loan{
		EquipmentID:    equipmentID,
		UserID:         user.ID,
		LoanedAt:       now,
		ExpectedReturn: now.Add(model.LoanPeriod),
		Motivo:         motivo,
		Estado:         model.PrestamoActivo,
	})
	if err != nil {
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}

	changed, err := markEquipmentPrestado(ctx, tx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}
	if !changed {
		// Lost the race: someone else loaned it under us.
		return nil, ErrNotAvailable
	}

	responsible := user.ID
	recordHistory(ctx, tx, &model.HistoryEntry{
		EquipmentID: equipmentID,
		PriorState:  model.EstadoDisponible,
		NewState:    model.EstadoPrestado,
		UserID:      &responsible,
		Motivo:      "Préstamo: " + motivo,
	})

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateLoan: %w", err)
	}
	return loan, nil
}

// ReturnLoan closes an active loan and makes its equipment available
// again. Already-returned and nonexistent loans are indistinguishable
// to the caller; both are ErrNotFound.
func ReturnLoan(ctx context.Context, db database.DB, loanID int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ReturnLoan: %w", err)
	}
	defer tx.Rollback(ctx)

	loan, err := getActiveLoanByID(ctx, tx, loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("préstamo activo %d: %w", loanID, ErrNotFound)
		}
		return fmt.Errorf("ReturnLoan: %w", err)
	}

	if err := closeLoan(ctx, tx, loan.ID, nowFunc()); err != nil {
		return fmt.Errorf("ReturnLoan: %w", err)
	}

	if err := markEquipmentDisponible(ctx, tx, loan.EquipmentID); err != nil {
		return fmt.Errorf("ReturnLoan: %w", err)
	}

	responsible := loan.UserID
	recordHistory(ctx, tx, &model.HistoryEntry{
		EquipmentID: loan.EquipmentID,
		PriorState:  model.EstadoPrestado,
		NewState:    model.EstadoDisponible,
		UserID:      &responsible,
		Motivo:      "Devolución de préstamo",
	})

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ReturnLoan: %w", err)
	}
	return nil
}
