package raffle

import (
	"raffle-tracker/internal/model"
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregator 對快照中 vendido 的紀錄做統計；同一個快照重算結果相同
type Aggregator struct {
	total          int
	commissionRate decimal.Decimal
}

func NewAggregator(total int, commissionRate decimal.Decimal) *Aggregator {
	return &Aggregator{total: total, commissionRate: commissionRate}
}

func (a *Aggregator) Summarize(snapshot model.Snapshot) model.SalesSummary {
	summary := model.SalesSummary{
		GrossRevenue:  decimal.Zero,
		SalesBySeller: make(map[string]int),
	}

	flagged := amountAnomalyRows(snapshot)
	for idx := range snapshot.Records {
		r := &snapshot.Records[idx]
		if !r.IsSold() {
			continue
		}
		summary.TotalSold++
		summary.GrossRevenue = summary.GrossRevenue.Add(r.Amount)
		summary.SalesBySeller[r.Seller]++
		if an, ok := flagged[r.Row]; ok {
			summary.FlaggedAmounts = append(summary.FlaggedAmounts, an)
		}
	}

	summary.TotalAvailable = a.total - summary.TotalSold
	summary.ActiveSellers = len(summary.SalesBySeller)
	summary.TopSellers = rankSellers(summary.SalesBySeller)
	if a.total > 0 {
		summary.ProgressPercent = decimal.NewFromInt(int64(summary.TotalSold)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(a.total))).
			Round(1)
	}

	return summary
}

// SellerStats 只計算單一賣家的已售數量、營收與佣金
func (a *Aggregator) SellerStats(snapshot model.Snapshot, seller string) model.SellerStats {
	stats := model.SellerStats{
		Seller:     seller,
		Revenue:    decimal.Zero,
		Commission: decimal.Zero,
	}

	for idx := range snapshot.Records {
		r := &snapshot.Records[idx]
		if !r.IsSold() || r.Seller != seller {
			continue
		}
		stats.Count++
		stats.Revenue = stats.Revenue.Add(r.Amount)
	}
	stats.Commission = stats.Revenue.Mul(a.commissionRate)

	return stats
}

// Duplicates 依號碼分組已售紀錄，回傳筆數大於 1 的組（依號碼排序，組內維持快照順序）
func Duplicates(snapshot model.Snapshot) []model.DuplicateGroup {
	groups := make(map[int][]model.SaleRecord)
	for _, r := range snapshot.Records {
		// 號碼解析失敗為 0，不算重複
		if !r.IsSold() || r.Number <= 0 {
			continue
		}
		groups[r.Number] = append(groups[r.Number], r)
	}

	dups := make([]model.DuplicateGroup, 0)
	for number, records := range groups {
		if len(records) > 1 {
			dups = append(dups, model.DuplicateGroup{Number: number, Records: records})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Number < dups[j].Number })

	return dups
}

// FilterRecords 依篩選條件回傳紀錄，維持快照順序
func FilterRecords(snapshot model.Snapshot, filter model.SaleFilter) []model.SaleRecord {
	out := make([]model.SaleRecord, 0, len(snapshot.Records))
	for idx := range snapshot.Records {
		if filter.Match(&snapshot.Records[idx]) {
			out = append(out, snapshot.Records[idx])
		}
	}
	return out
}

// Sellers 合併設定的賣家名單與帳本中出現的賣家：設定的在前（維持原順序），其餘排序後接在後面
func Sellers(configured []string, snapshot model.Snapshot) []string {
	seen := make(map[string]bool, len(configured))
	roster := make([]string, 0, len(configured))
	for _, s := range configured {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		roster = append(roster, s)
	}

	var discovered []string
	for _, r := range snapshot.Records {
		if r.Seller == "" || seen[r.Seller] {
			continue
		}
		seen[r.Seller] = true
		discovered = append(discovered, r.Seller)
	}
	sort.Strings(discovered)

	return append(roster, discovered...)
}

func rankSellers(bySeller map[string]int) []model.SellerCount {
	ranked := make([]model.SellerCount, 0, len(bySeller))
	for seller, count := range bySeller {
		ranked = append(ranked, model.SellerCount{Seller: seller, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Seller < ranked[j].Seller
	})
	return ranked
}

func amountAnomalyRows(snapshot model.Snapshot) map[int]model.Anomaly {
	rows := make(map[int]model.Anomaly)
	for _, a := range snapshot.AnomaliesIn(model.ColumnAmount) {
		rows[a.Row] = a
	}
	return rows
}
