package testutil

import (
	"context"
	"raffle-tracker/config"
	"raffle-tracker/internal/database"
	"raffle-tracker/internal/model"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// BaseTime 測試資料的固定時間
var BaseTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

// SetupPostgres 連線測試 DB（5433），建立帳本資料表並刪除 sheets 的資料；連不上就略過測試
func SetupPostgres(t *testing.T, sheets ...string) *pgxpool.Pool {
	t.Helper()
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM ledger_rows WHERE sheet = ANY($1)", sheets); err != nil {
		t.Fatalf("Failed to clear ledger rows: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM ledger_sheets WHERE name = ANY($1)", sheets); err != nil {
		t.Fatalf("Failed to clear ledger sheets: %v", err)
	}
	return pool
}

// SetupRedis 連線測試 Redis（6380 DB1），測試前後刪除 keys；連不上就略過測試。
// 不做 FlushDB，多個套件的測試會同時使用同一個 DB
func SetupRedis(t *testing.T, keys ...string) *redis.Client {
	t.Helper()
	cfg := config.LoadTestConfig()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}

	ctx := context.Background()
	reset := func() {
		if len(keys) > 0 {
			rdb.Del(ctx, keys...)
		}
	}
	reset()
	t.Cleanup(func() {
		reset()
		rdb.Close()
	})
	return rdb
}

// SaleRow 建立一列帳本資料，時間為 BaseTime 加上 number 秒
func SaleRow(seller string, number int, amount string, status model.SaleStatus) model.LedgerRow {
	return model.LedgerRow{
		BaseTime.Add(time.Duration(number) * time.Second).Format(model.TimestampLayout),
		seller,
		strconv.Itoa(number),
		"Comprador " + strconv.Itoa(number),
		"300" + strconv.Itoa(number),
		"",
		amount,
		string(status),
		"",
	}
}

// Sold 已售的帳本列，金額 5000
func Sold(seller string, number int) model.LedgerRow {
	return SaleRow(seller, number, "5000", model.SaleStatusSold)
}
