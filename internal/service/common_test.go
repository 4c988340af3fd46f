package service

import (
	"context"
	"raffle-tracker/config"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2024, 3, 15, 18, 45, 12, 0, time.Local)

func testRaffleConfig() config.RaffleConfig {
	cfg := config.DefaultRaffleConfig()
	cfg.Sellers = []string{"A", "B"}
	return cfg
}

func intPtr(n int) *int {
	return &n
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validRequest(number int) model.RegisterSaleRequest {
	return model.RegisterSaleRequest{
		Seller:     "A",
		Number:     intPtr(number),
		BuyerName:  "Juan Pérez",
		BuyerPhone: "3001234567",
	}
}

// seededLedger 記憶體帳本，先放入 rows
func seededLedger(t *testing.T, rows ...model.LedgerRow) *repository.MemoryLedgerRepository {
	t.Helper()
	ledger := repository.NewMemoryLedgerRepository(config.DefaultSheet)
	for _, row := range rows {
		if err := ledger.AppendRow(context.Background(), row); err != nil {
			t.Fatalf("seed ledger: %v", err)
		}
	}
	return ledger
}

func newLoader(t *testing.T, ledger repository.LedgerRepository, snapshotCache *fakeCache) *SnapshotLoader {
	if snapshotCache == nil {
		return NewSnapshotLoader(ledger, nil, zaptest.NewLogger(t))
	}
	return NewSnapshotLoader(ledger, snapshotCache, zaptest.NewLogger(t))
}

// fakeCache 記錄呼叫次數的快取
type fakeCache struct {
	mu          sync.Mutex
	rows        []model.LedgerRow
	hit         bool
	sets        int
	invalidated int
}

func (c *fakeCache) Get(ctx context.Context) ([]model.LedgerRow, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows, c.hit, nil
}

func (c *fakeCache) Set(ctx context.Context, rows []model.LedgerRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = rows
	c.hit = true
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = nil
	c.hit = false
	c.invalidated++
	return nil
}

