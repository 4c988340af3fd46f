package repository

import (
	"context"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepositoryAppendAndRead(t *testing.T) {
	pool := testutil.SetupPostgres(t, "ventas", "otra")
	ctx := context.Background()
	ledger := NewLedgerRepository(pool, "ventas")

	t.Run("Empty sheet", func(t *testing.T) {
		rows, err := ledger.ReadAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Append creates sheet and keeps order", func(t *testing.T) {
		require.NoError(t, ledger.AppendRow(ctx, testutil.Sold("A", 500)))
		require.NoError(t, ledger.AppendRow(ctx, testutil.Sold("B", 7)))

		rows, err := ledger.ReadAll(ctx)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, testutil.Sold("A", 500), rows[0])
		assert.Equal(t, testutil.Sold("B", 7), rows[1])

		var header []string
		err = pool.QueryRow(ctx, `SELECT header FROM ledger_sheets WHERE name = $1`, "ventas").Scan(&header)
		require.NoError(t, err)
		assert.Equal(t, model.LedgerHeader, header)
	})

	t.Run("Sheets are isolated", func(t *testing.T) {
		other := NewLedgerRepository(pool, "otra")

		rows, err := other.ReadAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestLedgerRepositoryEnsureSheetIsIdempotent(t *testing.T) {
	pool := testutil.SetupPostgres(t, "ventas")
	ctx := context.Background()
	ledger := NewLedgerRepository(pool, "ventas")

	require.NoError(t, ledger.EnsureSheet(ctx, "ventas", model.LedgerHeader))
	require.NoError(t, ledger.EnsureSheet(ctx, "ventas", model.LedgerHeader))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM ledger_sheets WHERE name = $1`, "ventas").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLedgerRepositoryArchiveRows(t *testing.T) {
	pool := testutil.SetupPostgres(t, "ventas", "ventas_archivo_20240315184512")
	ctx := context.Background()
	ledger := NewLedgerRepository(pool, "ventas")
	require.NoError(t, ledger.AppendRow(ctx, testutil.Sold("A", 1)))
	require.NoError(t, ledger.AppendRow(ctx, testutil.Sold("A", 2)))

	moved, err := ledger.ArchiveRows(ctx, "ventas_archivo_20240315184512")

	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	rows, err := ledger.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	archived, err := NewLedgerRepository(pool, "ventas_archivo_20240315184512").ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, archived, 2)
}
