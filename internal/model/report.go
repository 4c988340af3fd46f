package model

import "github.com/shopspring/decimal"

// InventoryView 可售/已售號碼，Anomalies 是這次計算排除掉的號碼資料
type InventoryView struct {
	Total     int       `json:"total"`
	Available []int     `json:"available"`
	Sold      []int     `json:"sold"`
	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

type SellerCount struct {
	Seller string `json:"seller"`
	Count  int    `json:"count"`
}

// SalesSummary 由快照中所有 vendido 的紀錄計算
type SalesSummary struct {
	TotalSold       int             `json:"total_sold"`
	TotalAvailable  int             `json:"total_available"`
	GrossRevenue    decimal.Decimal `json:"gross_revenue"`
	SalesBySeller   map[string]int  `json:"sales_by_seller"`
	ActiveSellers   int             `json:"active_sellers"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	TopSellers      []SellerCount   `json:"top_sellers"`
	// FlaggedAmounts 金額無法解析、以 0 計入的已售紀錄
	FlaggedAmounts []Anomaly `json:"flagged_amounts,omitempty"`
}

type SellerStats struct {
	Seller     string          `json:"seller"`
	Count      int             `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Commission decimal.Decimal `json:"commission"`
}

// DuplicateGroup 同一號碼有多筆 vendido 紀錄
type DuplicateGroup struct {
	Number  int          `json:"number"`
	Records []SaleRecord `json:"records"`
}

type DrawResult struct {
	Winner        SaleRecord `json:"winner"`
	EligibleCount int        `json:"eligible_count"`
	// Duplicates 非空代表中獎號碼在帳本中重複出現（資料完整性警告）
	Duplicates []SaleRecord `json:"duplicates,omitempty"`
	Warning    string       `json:"warning,omitempty"`
}

func (r *DrawResult) HasDuplicate() bool {
	return len(r.Duplicates) > 1
}

// ResetResult 帳本歸檔結果
type ResetResult struct {
	Sheet     string `json:"sheet"`
	Archive   string `json:"archive"`
	MovedRows int64  `json:"moved_rows"`
}
