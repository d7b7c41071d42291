package model

import (
	"strings"

	apperrors "go-seat-identifier/pkg/app_errors"
	"go-seat-identifier/pkg/result"
)

// Row 座位排號，建立後保證非空
type Row struct {
	value string
}

// CreateRow 驗證並建立排號；nil 與空字串皆視為無效
func CreateRow(raw *string) result.Result[Row] {
	if raw == nil || *raw == "" {
		return result.Failure[Row](apperrors.ErrRowIsNullOrEmpty)
	}
	return result.Success(Row{value: *raw})
}

func (r Row) Value() string {
	return r.value
}

func (r Row) String() string {
	return r.value
}

func (r Row) Compare(other Row) int {
	return strings.Compare(r.value, other.value)
}

func (r Row) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}
