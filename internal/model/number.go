package model

import (
	"strings"

	apperrors "go-seat-identifier/pkg/app_errors"
	"go-seat-identifier/pkg/result"
)

// Number 座位號碼，建立後保證非空
type Number struct {
	value string
}

// CreateNumber 驗證並建立座號；nil 與空字串皆視為無效
func CreateNumber(raw *string) result.Result[Number] {
	if raw == nil || *raw == "" {
		return result.Failure[Number](apperrors.ErrNumberIsNullOrEmpty)
	}
	return result.Success(Number{value: *raw})
}

func (n Number) Value() string {
	return n.value
}

func (n Number) String() string {
	return n.value
}

func (n Number) Compare(other Number) int {
	return strings.Compare(n.value, other.value)
}

func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}
