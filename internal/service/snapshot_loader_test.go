package service

import (
	"context"
	"errors"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository/mocks"
	"raffle-tracker/internal/testutil"
	"testing"

	apperrors "raffle-tracker/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLoaderForDisplay(t *testing.T) {
	t.Run("Miss fills the cache", func(t *testing.T) {
		snapshotCache := &fakeCache{}
		loader := newLoader(t, seededLedger(t, testutil.Sold("A", 1)), snapshotCache)

		snapshot, err := loader.ForDisplay(context.Background())

		require.NoError(t, err)
		assert.Len(t, snapshot.Records, 1)
		assert.Equal(t, 1, snapshotCache.sets)
	})

	t.Run("Hit skips the ledger", func(t *testing.T) {
		ledger := mocks.NewMockLedgerRepository(t)
		snapshotCache := &fakeCache{rows: []model.LedgerRow{testutil.Sold("A", 1)}, hit: true}
		loader := newLoader(t, ledger, snapshotCache)

		snapshot, err := loader.ForDisplay(context.Background())

		require.NoError(t, err)
		assert.Len(t, snapshot.Records, 1)
		ledger.AssertNotCalled(t, "ReadAll", mock.Anything)
	})

	t.Run("Invalidation during read does not refill the cache", func(t *testing.T) {
		ledger := mocks.NewMockLedgerRepository(t)
		snapshotCache := &fakeCache{}
		loader := newLoader(t, ledger, snapshotCache)

		// 讀帳本的同時另一個請求登記成功並清快取
		ledger.EXPECT().ReadAll(mock.Anything).RunAndReturn(func(ctx context.Context) ([]model.LedgerRow, error) {
			loader.Invalidate(ctx)
			return []model.LedgerRow{testutil.Sold("A", 1)}, nil
		}).Once()

		snapshot, err := loader.ForDisplay(context.Background())

		require.NoError(t, err)
		assert.Len(t, snapshot.Records, 1)
		assert.Equal(t, 1, snapshotCache.invalidated)
		assert.Equal(t, 0, snapshotCache.sets)
		assert.False(t, snapshotCache.hit)

		// 沒有併發清除時照常回填
		ledger.EXPECT().ReadAll(mock.Anything).Return([]model.LedgerRow{testutil.Sold("A", 1), testutil.Sold("B", 2)}, nil).Once()

		snapshot, err = loader.ForDisplay(context.Background())

		require.NoError(t, err)
		assert.Len(t, snapshot.Records, 2)
		assert.Equal(t, 1, snapshotCache.sets)
	})

	t.Run("Read failure", func(t *testing.T) {
		ledger := mocks.NewMockLedgerRepository(t)
		snapshotCache := &fakeCache{}
		loader := newLoader(t, ledger, snapshotCache)
		ledger.EXPECT().ReadAll(mock.Anything).Return(nil, errors.New("timeout")).Once()
		ledger.EXPECT().Name().Return("ventas").Maybe()

		_, err := loader.ForDisplay(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrDataRead)
		assert.Equal(t, 0, snapshotCache.sets)
	})
}

func TestSnapshotLoaderFreshIgnoresCache(t *testing.T) {
	snapshotCache := &fakeCache{rows: []model.LedgerRow{testutil.Sold("A", 1)}, hit: true}
	loader := newLoader(t, seededLedger(t), snapshotCache)

	snapshot, err := loader.Fresh(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snapshot.Records)
	assert.Equal(t, 0, snapshotCache.sets)
}
