package service

import (
	"context"
	"raffle-tracker/internal/audit"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/testutil"
	"testing"

	apperrors "raffle-tracker/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func first(n int) int { return 0 }

func TestDrawNoEligibleNumbers(t *testing.T) {
	ctx := context.Background()
	ledger := seededLedger(t, testutil.SaleRow("A", 4, "5000", model.SaleStatusReserved))
	auditLog := audit.NewMemoryAuditLog(10)
	draws := NewDrawService(newLoader(t, ledger, nil), testRaffleConfig(), auditLog, first, zaptest.NewLogger(t))

	result, err := draws.Draw(ctx, "admin")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleNumbers)
	events, err := auditLog.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDrawWinner(t *testing.T) {
	ctx := context.Background()
	ledger := seededLedger(t, testutil.Sold("B", 42), testutil.Sold("A", 3))
	auditLog := audit.NewMemoryAuditLog(10)
	draws := NewDrawService(newLoader(t, ledger, nil), testRaffleConfig(), auditLog, first, zaptest.NewLogger(t))

	result, err := draws.Draw(ctx, "admin")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Winner.Number)
	assert.Equal(t, "Comprador 3", result.Winner.BuyerName)
	assert.Equal(t, 2, result.EligibleCount)
	assert.Empty(t, result.Warning)

	events, err := auditLog.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventDraw, events[0].Type)
	assert.Equal(t, "admin", events[0].Actor)
	assert.Equal(t, 3, events[0].Number)
}

func TestDrawDuplicateIsAudited(t *testing.T) {
	ctx := context.Background()
	ledger := seededLedger(t, testutil.Sold("A", 9), testutil.Sold("B", 9))
	auditLog := audit.NewMemoryAuditLog(10)
	draws := NewDrawService(newLoader(t, ledger, nil), testRaffleConfig(), auditLog, first, zaptest.NewLogger(t))

	result, err := draws.Draw(ctx, "admin")

	require.NoError(t, err)
	assert.True(t, result.HasDuplicate())
	assert.Equal(t, apperrors.ErrDuplicateNumberDetected.Error(), result.Warning)

	events, err := auditLog.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.EventDuplicateDetected, events[0].Type)
	assert.Equal(t, audit.EventDraw, events[1].Type)
}

func TestDrawIgnoresDisplayCache(t *testing.T) {
	ledger := seededLedger(t, testutil.Sold("A", 8))
	stale := &fakeCache{hit: true, rows: []model.LedgerRow{}}
	draws := NewDrawService(newLoader(t, ledger, stale), testRaffleConfig(), nil, nil, zaptest.NewLogger(t))

	result, err := draws.Draw(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 8, result.Winner.Number)
}
