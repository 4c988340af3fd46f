package raffle

import (
	"raffle-tracker/internal/model"
	"sort"
	"strconv"
)

// Inventory 由帳本快照推導可售/已售號碼，號碼範圍為 [1, total]
type Inventory struct {
	total int
}

func NewInventory(total int) *Inventory {
	return &Inventory{total: total}
}

func (i *Inventory) Total() int {
	return i.total
}

func (i *Inventory) InRange(number int) bool {
	return number >= 1 && number <= i.total
}

// Sold 回傳已售號碼（去重、排序）。號碼無法解析或超出範圍的紀錄不計入
func (i *Inventory) Sold(snapshot model.Snapshot) []int {
	set := i.soldSet(snapshot)
	sold := make([]int, 0, len(set))
	for n := range set {
		sold = append(sold, n)
	}
	sort.Ints(sold)
	return sold
}

// Available 回傳 [1, total] 中未售出的號碼；空快照即整個範圍
func (i *Inventory) Available(snapshot model.Snapshot) []int {
	set := i.soldSet(snapshot)
	available := make([]int, 0, i.total-len(set))
	for n := 1; n <= i.total; n++ {
		if !set[n] {
			available = append(available, n)
		}
	}
	return available
}

func (i *Inventory) IsSold(snapshot model.Snapshot, number int) bool {
	return i.soldSet(snapshot)[number]
}

// Anomalies 計算庫存時被排除的紀錄：號碼無法解析，或已售但號碼超出範圍
func (i *Inventory) Anomalies(snapshot model.Snapshot) []model.Anomaly {
	anomalies := snapshot.AnomaliesIn(model.ColumnNumber)
	bad := make(map[int]bool)
	for _, a := range anomalies {
		bad[a.Row] = true
	}

	for idx := range snapshot.Records {
		r := &snapshot.Records[idx]
		if !r.IsSold() || bad[r.Row] || i.InRange(r.Number) {
			continue
		}
		anomalies = append(anomalies, model.Anomaly{
			Row:    r.Row,
			Column: model.ColumnNumber,
			Value:  strconv.Itoa(r.Number),
			Reason: "number out of range",
		})
	}
	return anomalies
}

func (i *Inventory) View(snapshot model.Snapshot) model.InventoryView {
	return model.InventoryView{
		Total:     i.total,
		Available: i.Available(snapshot),
		Sold:      i.Sold(snapshot),
		Anomalies: i.Anomalies(snapshot),
	}
}

// 解析失敗的號碼是 0，會被範圍檢查排除
func (i *Inventory) soldSet(snapshot model.Snapshot) map[int]bool {
	set := make(map[int]bool)
	for idx := range snapshot.Records {
		r := &snapshot.Records[idx]
		if !r.IsSold() || !i.InRange(r.Number) {
			continue
		}
		set[r.Number] = true
	}
	return set
}
