package raffle

import (
	"math/rand/v2"
	"raffle-tracker/internal/model"
	apperrors "raffle-tracker/pkg/app_errors"
)

// Picker 回傳 [0, n) 之間均勻分布的整數
type Picker func(n int) int

// RandomPicker 抽獎只要求公平，不需要密碼學等級的亂數
func RandomPicker() Picker {
	return rand.IntN
}

// DrawWinner 從已售號碼（去重）中均勻抽出一個，回傳快照中第一筆該號碼的紀錄。
// 同號碼有多筆 vendido 時仍回傳結果，並在 Duplicates/Warning 標示
func DrawWinner(snapshot model.Snapshot, inventory *Inventory, pick Picker) (*model.DrawResult, error) {
	eligible := inventory.Sold(snapshot)
	if len(eligible) == 0 {
		return nil, apperrors.ErrNoEligibleNumbers
	}
	if pick == nil {
		pick = RandomPicker()
	}

	number := eligible[pick(len(eligible))]

	var matches []model.SaleRecord
	for _, r := range snapshot.Records {
		if r.IsSold() && r.Number == number {
			matches = append(matches, r)
		}
	}

	result := &model.DrawResult{
		Winner:        matches[0],
		EligibleCount: len(eligible),
	}
	if len(matches) > 1 {
		result.Duplicates = matches
		result.Warning = apperrors.ErrDuplicateNumberDetected.Error()
	}

	return result, nil
}
