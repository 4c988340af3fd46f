package apperrors

import (
	"errors"
	"fmt"
)

var (
	// 連線 / 讀取
	ErrConnection = errors.New("ledger store connection failed")
	ErrDataRead   = errors.New("failed to read ledger snapshot")

	// 登記銷售
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidNumber     = errors.New("invalid raffle number")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNumberAlreadySold = errors.New("number already sold")
	ErrStoreUnavailable  = errors.New("ledger store unavailable")

	// 抽獎
	ErrNoEligibleNumbers       = errors.New("no eligible numbers to draw")
	ErrDuplicateNumberDetected = errors.New("duplicate sold number detected")

	// 管理
	ErrResetDisabled     = errors.New("reset is disabled")
	ErrResetNotConfirmed = errors.New("reset confirmation does not match ledger name")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// FieldError ties a validation error to the request field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldOf 取出錯誤對應的欄位名稱，沒有則回傳空字串
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
