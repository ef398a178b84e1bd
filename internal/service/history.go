// File: internal/service/history.go
package service

import (
	"context"
	"log"

	"inventario-lab/internal/model"
	"inventario-lab/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	insertHistory = store.InsertHistory
	logPrintf     = log.Printf
)

// RecordHistory appends one audit entry for an equipment state
// transition. It runs on the caller's transaction but inside its own
// savepoint: if the insert fails, only the savepoint rolls back and
// the failure is logged and swallowed, so the primary operation still
// commits. If the caller's transaction rolls back later, the staged
// entry goes with it.
func RecordHistory(ctx context.Context, tx pgx.Tx, h *model.HistoryEntry) {
	sp, err := tx.Begin(ctx)
	if err != nil {
		logPrintf("historial: savepoint para equipo %d: %v", h.EquipmentID, err)
		return
	}
	if err := insertHistory(ctx, sp, h); err != nil {
		_ = sp.Rollback(ctx)
		logPrintf("historial: registro %s -> %s para equipo %d: %v", h.PriorState, h.NewState, h.EquipmentID, err)
		return
	}
	if err := sp.Commit(ctx); err != nil {
		logPrintf("historial: commit de savepoint para equipo %d: %v", h.EquipmentID, err)
	}
}
