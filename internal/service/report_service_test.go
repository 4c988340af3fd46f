package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository/mocks"
	"raffle-tracker/internal/testutil"
	"strings"
	"testing"

	apperrors "raffle-tracker/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newReportService(t *testing.T, rows ...model.LedgerRow) ReportService {
	ledger := seededLedger(t, rows...)
	return NewReportService(newLoader(t, ledger, nil), testRaffleConfig(), zaptest.NewLogger(t))
}

func TestReportEmptyLedger(t *testing.T) {
	ctx := context.Background()
	reports := newReportService(t)

	view, err := reports.Inventory(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Available, 1000)
	assert.Empty(t, view.Sold)

	summary, err := reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalSold)
	assert.Equal(t, 1000, summary.TotalAvailable)
	assert.True(t, summary.GrossRevenue.IsZero())
	assert.Empty(t, summary.SalesBySeller)
}

func TestReportSellerStats(t *testing.T) {
	reports := newReportService(t,
		testutil.Sold("A", 1),
		testutil.SaleRow("A", 2, "2500", model.SaleStatusSold),
		testutil.Sold("B", 3),
	)

	stats, err := reports.SellerStats(context.Background(), " A ")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.True(t, decimal.NewFromInt(7500).Equal(stats.Revenue))
	assert.True(t, decimal.NewFromInt(750).Equal(stats.Commission))

	_, err = reports.SellerStats(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
	assert.Equal(t, "seller", apperrors.FieldOf(err))
}

func TestReportSales(t *testing.T) {
	reports := newReportService(t,
		testutil.Sold("A", 1),
		testutil.SaleRow("B", 2, "5000", model.SaleStatusReserved),
		testutil.Sold("A", 3),
	)

	records, err := reports.Sales(context.Background(), model.SaleFilter{Seller: "A"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Number)
	assert.Equal(t, 3, records[1].Number)

	_, err = reports.Sales(context.Background(), model.SaleFilter{Status: "perdido"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "status", apperrors.FieldOf(err))
}

func TestReportExport(t *testing.T) {
	reports := newReportService(t,
		testutil.Sold("A", 1),
		testutil.SaleRow("B", 2, "$4.000", model.SaleStatusSold),
		testutil.SaleRow("A", 3, "5000", model.SaleStatusCancelled),
	)

	var buf bytes.Buffer
	err := reports.Export(context.Background(), model.SaleFilter{Status: model.SaleStatusSold}, &buf)
	require.NoError(t, err)

	lines, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, model.LedgerHeader, lines[0])
	assert.Equal(t, []string(testutil.Sold("A", 1)), lines[1])
	// 匯出帳本原值，不重新格式化
	assert.Equal(t, "$4.000", lines[2][6])
}

func TestReportDuplicatesReadsFresh(t *testing.T) {
	ledger := seededLedger(t, testutil.Sold("A", 9), testutil.Sold("B", 9))
	stale := &fakeCache{hit: true, rows: []model.LedgerRow{}}
	reports := NewReportService(newLoader(t, ledger, stale), testRaffleConfig(), zaptest.NewLogger(t))

	groups, err := reports.Duplicates(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 9, groups[0].Number)
	assert.Len(t, groups[0].Records, 2)
}

func TestReportSellers(t *testing.T) {
	reports := newReportService(t, testutil.Sold("Carla", 1), testutil.Sold("A", 2))

	sellers, err := reports.Sellers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Carla"}, sellers)
}

func TestReportUsesDisplayCache(t *testing.T) {
	// 快取命中時不讀帳本：mock 沒設定 ReadAll
	ledger := mocks.NewMockLedgerRepository(t)
	cached := &fakeCache{hit: true, rows: []model.LedgerRow{testutil.Sold("A", 5)}}
	reports := NewReportService(newLoader(t, ledger, cached), testRaffleConfig(), zaptest.NewLogger(t))

	view, err := reports.Inventory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{5}, view.Sold)
}

func TestReportDataReadError(t *testing.T) {
	ledger := mocks.NewMockLedgerRepository(t)
	ledger.EXPECT().Name().Return("ventas").Maybe()
	ledger.EXPECT().ReadAll(mock.Anything).Return(nil, errors.New("timeout")).Once()
	reports := NewReportService(newLoader(t, ledger, nil), testRaffleConfig(), zaptest.NewLogger(t))

	_, err := reports.Summary(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrDataRead)
}
