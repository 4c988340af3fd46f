package service

import (
	"context"
	"errors"
	"raffle-tracker/internal/audit"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository/mocks"
	"raffle-tracker/internal/testutil"
	"strconv"
	"testing"
	"time"

	apperrors "raffle-tracker/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newSaleService(t *testing.T, ledger *mocks.MockLedgerRepository) SaleService {
	ledger.EXPECT().Name().Return("ventas").Maybe()
	return NewSaleService(ledger, newLoader(t, ledger, nil), testRaffleConfig(), audit.NewMemoryAuditLog(10), zaptest.NewLogger(t), WithClock(func() time.Time { return fixedNow }))
}

func TestRegisterSaleEndToEnd(t *testing.T) {
	ctx := context.Background()
	ledger := seededLedger(t)
	snapshotCache := &fakeCache{}
	loader := newLoader(t, ledger, snapshotCache)
	auditLog := audit.NewMemoryAuditLog(10)
	cfg := testRaffleConfig()
	sales := NewSaleService(ledger, loader, cfg, auditLog, zaptest.NewLogger(t), WithClock(func() time.Time { return fixedNow }))
	reports := NewReportService(loader, cfg, zaptest.NewLogger(t))

	record, err := sales.RegisterSale(ctx, validRequest(500))

	require.NoError(t, err)
	assert.Equal(t, 500, record.Number)
	assert.Equal(t, "A", record.Seller)
	assert.True(t, decimal.NewFromInt(5000).Equal(record.Amount))
	assert.Equal(t, model.SaleStatusSold, record.Status)
	assert.True(t, fixedNow.Equal(record.Timestamp))

	rows, err := ledger.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-03-15 18:45:12", rows[0][0])
	assert.Equal(t, "500", rows[0][2])
	assert.Equal(t, "vendido", rows[0][7])

	summary, err := reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalSold)
	assert.Equal(t, 999, summary.TotalAvailable)
	assert.True(t, decimal.NewFromInt(5000).Equal(summary.GrossRevenue))
	assert.Equal(t, map[string]int{"A": 1}, summary.SalesBySeller)

	view, err := reports.Inventory(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Available, 999)
	assert.NotContains(t, view.Available, 500)

	assert.Equal(t, 1, snapshotCache.invalidated)

	events, err := auditLog.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventSaleRegistered, events[0].Type)
	assert.Equal(t, 500, events[0].Number)
}

func TestRegisterSaleRejectsOutOfRangeNumbers(t *testing.T) {
	for _, number := range []int{0, 1001, -5} {
		t.Run(strconv.Itoa(number), func(t *testing.T) {
			// 範圍檢查在讀帳本之前：mock 沒設定 ReadAll，被呼叫就會失敗
			ledger := mocks.NewMockLedgerRepository(t)
			sales := newSaleService(t, ledger)

			record, err := sales.RegisterSale(context.Background(), validRequest(number))

			assert.Nil(t, record)
			assert.ErrorIs(t, err, apperrors.ErrInvalidNumber)
			assert.Equal(t, "number", apperrors.FieldOf(err))
			ledger.AssertNotCalled(t, "AppendRow", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterSaleMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*model.RegisterSaleRequest)
		field string
	}{
		{"Seller", func(r *model.RegisterSaleRequest) { r.Seller = "  " }, "seller"},
		{"Buyer name", func(r *model.RegisterSaleRequest) { r.BuyerName = "" }, "buyer_name"},
		{"Buyer phone", func(r *model.RegisterSaleRequest) { r.BuyerPhone = "" }, "buyer_phone"},
		{"Number", func(r *model.RegisterSaleRequest) { r.Number = nil }, "number"},
		// 必填檢查先於號碼範圍
		{"Seller before range", func(r *model.RegisterSaleRequest) { r.Seller = ""; r.Number = intPtr(0) }, "seller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := mocks.NewMockLedgerRepository(t)
			sales := newSaleService(t, ledger)
			req := validRequest(10)
			tt.edit(&req)

			_, err := sales.RegisterSale(context.Background(), req)

			assert.ErrorIs(t, err, apperrors.ErrMissingField)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}
}

func TestRegisterSaleAlreadySold(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	sales := newSaleService(t, ledger)
	ledger.EXPECT().ReadAll(mock.Anything).Return([]model.LedgerRow{testutil.Sold("B", 500)}, nil).Once()

	req := validRequest(500)
	req.Seller = "A"
	record, err := sales.RegisterSale(context.Background(), req)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, apperrors.ErrNumberAlreadySold)
	assert.Equal(t, "number", apperrors.FieldOf(err))
	ledger.AssertNotCalled(t, "AppendRow", mock.Anything, mock.Anything)
}

func TestRegisterSaleCancelledNumberIsAvailable(t *testing.T) {
	ledger := seededLedger(t, testutil.SaleRow("B", 77, "5000", model.SaleStatusCancelled))
	sales := NewSaleService(ledger, newLoader(t, ledger, nil), testRaffleConfig(), nil, zaptest.NewLogger(t))

	record, err := sales.RegisterSale(context.Background(), validRequest(77))

	require.NoError(t, err)
	assert.Equal(t, 77, record.Number)
}

func TestRegisterSaleReadsFreshSnapshot(t *testing.T) {
	ledger := seededLedger(t, testutil.Sold("B", 12))
	// 快取內容過期（沒有 12），登記仍必須看到帳本中的 12
	stale := &fakeCache{hit: true, rows: []model.LedgerRow{}}
	sales := NewSaleService(ledger, newLoader(t, ledger, stale), testRaffleConfig(), nil, zaptest.NewLogger(t))

	_, err := sales.RegisterSale(context.Background(), validRequest(12))

	assert.ErrorIs(t, err, apperrors.ErrNumberAlreadySold)
}

func TestRegisterSaleDataReadError(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	sales := newSaleService(t, ledger)
	readErr := errors.New("connection reset")
	ledger.EXPECT().ReadAll(mock.Anything).Return(nil, readErr).Once()

	_, err := sales.RegisterSale(context.Background(), validRequest(10))

	assert.ErrorIs(t, err, apperrors.ErrDataRead)
	assert.ErrorIs(t, err, readErr)
	ledger.AssertNotCalled(t, "AppendRow", mock.Anything, mock.Anything)
}

func TestRegisterSaleStoreUnavailable(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	sales := newSaleService(t, ledger)
	appendErr := errors.New("quota exceeded")
	ledger.EXPECT().ReadAll(mock.Anything).Return([]model.LedgerRow{}, nil).Once()
	ledger.EXPECT().AppendRow(mock.Anything, mock.Anything).Return(appendErr).Once()

	record, err := sales.RegisterSale(context.Background(), validRequest(10))

	assert.Nil(t, record)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, appendErr)
	assert.Empty(t, apperrors.FieldOf(err))
}

func TestRegisterSaleAppendsExactlyOnce(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	sales := newSaleService(t, ledger)
	ledger.EXPECT().ReadAll(mock.Anything).Return([]model.LedgerRow{}, nil).Once()

	var appended model.LedgerRow
	ledger.EXPECT().AppendRow(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, row model.LedgerRow) { appended = row }).
		Return(nil).Once()

	req := validRequest(33)
	req.BuyerEmail = " juan@example.com "
	req.Notes = "pagó en efectivo"
	_, err := sales.RegisterSale(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, model.LedgerRow{
		"2024-03-15 18:45:12", "A", "33", "Juan Pérez", "3001234567", "juan@example.com", "5000", "vendido", "pagó en efectivo",
	}, appended)
}

func TestRegisterSaleAmount(t *testing.T) {
	t.Run("Explicit amount", func(t *testing.T) {
		ledger := seededLedger(t)
		sales := NewSaleService(ledger, newLoader(t, ledger, nil), testRaffleConfig(), nil, zaptest.NewLogger(t))
		req := validRequest(1)
		req.Amount = decimalPtr("10000.50")

		record, err := sales.RegisterSale(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "10000.5", record.Amount.String())
	})

	for _, amount := range []string{"0", "-100"} {
		t.Run("Rejects "+amount, func(t *testing.T) {
			ledger := seededLedger(t)
			sales := NewSaleService(ledger, newLoader(t, ledger, nil), testRaffleConfig(), nil, zaptest.NewLogger(t))
			req := validRequest(1)
			req.Amount = decimalPtr(amount)

			_, err := sales.RegisterSale(context.Background(), req)

			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
			assert.Equal(t, "amount", apperrors.FieldOf(err))
			rows, _ := ledger.ReadAll(context.Background())
			assert.Empty(t, rows)
		})
	}
}

func TestRegisterManualSale(t *testing.T) {
	ctx := context.Background()
	ledger := seededLedger(t)
	auditLog := audit.NewMemoryAuditLog(10)
	sales := NewSaleService(ledger, newLoader(t, ledger, nil), testRaffleConfig(), auditLog, zaptest.NewLogger(t))
	req := validRequest(250)
	req.Notes = "cualquier nota"

	record, err := sales.RegisterManualSale(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, model.ManualSaleNote, record.Notes)

	rows, err := ledger.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Venta manual", rows[0][8])

	events, err := auditLog.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventManualSaleRegistered, events[0].Type)

	// 同號碼再登記一次
	_, err = sales.RegisterManualSale(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrNumberAlreadySold)
}
