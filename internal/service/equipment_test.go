package service

import (
	"context"
	"errors"
	"testing"

	"inventario-lab/internal/database"
	"inventario-lab/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestCreateEquipment(t *testing.T) {
	t.Run("success with explicit state", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, _ := newTxDB(t)
		createEquipment = func(_ context.Context, _ database.Querier, e *model.Equipment) (*model.Equipment, error) {
			e.ID = 4
			return e, nil
		}
		var entries []model.HistoryEntry
		captureHistory(&entries)

		e, err := CreateEquipment(context.Background(), db, "Osciloscopio", "100 MHz", model.EstadoPrestado)
		require.NoError(t, err)
		require.True(t, *committed)
		require.Equal(t, 4, e.ID)
		require.Equal(t, model.EstadoPrestado, e.Estado)

		require.Len(t, entries, 1)
		require.Equal(t, 4, entries[0].EquipmentID)
		require.Equal(t, model.EstadoNuevo, entries[0].PriorState)
		require.Equal(t, model.EstadoPrestado, entries[0].NewState)
		require.Nil(t, entries[0].UserID)
		require.Equal(t, "Equipo creado: Osciloscopio", entries[0].Motivo)
	})

	t.Run("empty state defaults to disponible", func(t *testing.T) {
		t.Cleanup(restore)
		db, _, _ := newTxDB(t)
		createEquipment = func(_ context.Context, _ database.Querier, e *model.Equipment) (*model.Equipment, error) {
			e.ID = 4
			return e, nil
		}
		var entries []model.HistoryEntry
		captureHistory(&entries)

		e, err := CreateEquipment(context.Background(), db, "Multímetro", "", "")
		require.NoError(t, err)
		require.Equal(t, model.EstadoDisponible, e.Estado)
		require.Len(t, entries, 1)
		require.Equal(t, model.EstadoDisponible, entries[0].NewState)
	})

	t.Run("insert error rolls back", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, rolledBack := newTxDB(t)
		createEquipment = func(_ context.Context, _ database.Querier, _ *model.Equipment) (*model.Equipment, error) {
			return nil, errors.New("insert failed")
		}
		_, err := CreateEquipment(context.Background(), db, "x", "", "")
		require.Error(t, err)
		require.False(t, *committed)
		require.True(t, *rolledBack)
	})
}

func TestUpdateEquipment(t *testing.T) {
	t.Run("state change logs history", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, _ := newTxDB(t)
		getEquipmentByID = func(_ context.Context, _ database.Querier, id int) (*model.Equipment, error) {
			return &model.Equipment{ID: id, Name: "Balanza", Estado: model.EstadoDisponible}, nil
		}
		var written model.Equipment
		updateEquipment = func(_ context.Context, _ database.Querier, e *model.Equipment) error {
			written = *e
			return nil
		}
		var entries []model.HistoryEntry
		captureHistory(&entries)

		err := UpdateEquipment(context.Background(), db, 2, "Balanza analítica", "0.1 mg", model.EstadoPrestado)
		require.NoError(t, err)
		require.True(t, *committed)
		require.Equal(t, "Balanza analítica", written.Name)
		require.Equal(t, model.EstadoPrestado, written.Estado)

		require.Len(t, entries, 1)
		require.Equal(t, model.EstadoDisponible, entries[0].PriorState)
		require.Equal(t, model.EstadoPrestado, entries[0].NewState)
		require.Equal(t, "Equipo actualizado", entries[0].Motivo)
	})

	t.Run("same state logs nothing", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, _ := newTxDB(t)
		getEquipmentByID = func(_ context.Context, _ database.Querier, id int) (*model.Equipment, error) {
			return &model.Equipment{ID: id, Estado: model.EstadoDisponible}, nil
		}
		updated := false
		updateEquipment = func(_ context.Context, _ database.Querier, _ *model.Equipment) error {
			updated = true
			return nil
		}
		var entries []model.HistoryEntry
		captureHistory(&entries)

		err := UpdateEquipment(context.Background(), db, 2, "Balanza", "", model.EstadoDisponible)
		require.NoError(t, err)
		require.True(t, *committed)
		require.True(t, updated)
		require.Empty(t, entries)
	})

	t.Run("missing equipment", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, _ := newTxDB(t)
		getEquipmentByID = func(_ context.Context, _ database.Querier, _ int) (*model.Equipment, error) {
			return nil, pgx.ErrNoRows
		}
		err := UpdateEquipment(context.Background(), db, 99, "x", "", model.EstadoDisponible)
		require.ErrorIs(t, err, ErrNotFound)
		require.False(t, *committed)
	})
}

func TestDeleteEquipment(t *testing.T) {
	t.Run("history entry precedes the delete", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, _ := newTxDB(t)
		getEquipmentByID = func(_ context.Context, _ database.Querier, id int) (*model.Equipment, error) {
			return &model.Equipment{ID: id, Estado: model.EstadoDisponible}, nil
		}
		var calls []string
		recordHistory = func(_ context.Context, _ pgx.Tx, h *model.HistoryEntry) {
			calls = append(calls, "history")
			require.Equal(t, model.EstadoDisponible, h.PriorState)
			require.Equal(t, model.EstadoEliminado, h.NewState)
			require.Equal(t, "Equipo eliminado del sistema", h.Motivo)
		}
		deleteEquipment = func(_ context.Context, _ database.Querier, _ int) error {
			calls = append(calls, "delete")
			return nil
		}

		require.NoError(t, DeleteEquipment(context.Background(), db, 2))
		require.True(t, *committed)
		require.Equal(t, []string{"history", "delete"}, calls)
	})

	t.Run("missing equipment", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, _ := newTxDB(t)
		getEquipmentByID = func(_ context.Context, _ database.Querier, _ int) (*model.Equipment, error) {
			return nil, pgx.ErrNoRows
		}
		err := DeleteEquipment(context.Background(), db, 99)
		require.ErrorIs(t, err, ErrNotFound)
		require.False(t, *committed)
	})

	t.Run("delete error rolls back", func(t *testing.T) {
		t.Cleanup(restore)
		db, committed, rolledBack := newTxDB(t)
		getEquipmentByID = func(_ context.Context, _ database.Querier, id int) (*model.Equipment, error) {
			return &model.Equipment{ID: id, Estado: model.EstadoDisponible}, nil
		}
		var entries []model.HistoryEntry
		captureHistory(&entries)
		deleteEquipment = func(_ context.Context, _ database.Querier, _ int) error {
			return errors.New("delete failed")
		}
		err := DeleteEquipment(context.Background(), db, 2)
		require.Error(t, err)
		require.False(t, *committed)
		require.True(t, *rolledBack)
	})
}
