package model

import (
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	_ pgtype.TextScanner = (*Row)(nil)
	_ pgtype.TextValuer  = Row{}
	_ pgtype.TextScanner = (*Number)(nil)
	_ pgtype.TextValuer  = Number{}
)

// ScanText 經過 CreateRow 驗證；NULL 與空字串皆失敗，失敗時不修改接收者
func (r *Row) ScanText(v pgtype.Text) error {
	created := CreateRow(textPtr(v))
	if created.IsFailure() {
		return created.Err()
	}
	*r = created.Value()
	return nil
}

// TextValue 零值寫入為 NULL
func (r Row) TextValue() (pgtype.Text, error) {
	return textOf(r.value), nil
}

// ScanText 經過 CreateNumber 驗證；NULL 與空字串皆失敗，失敗時不修改接收者
func (n *Number) ScanText(v pgtype.Text) error {
	created := CreateNumber(textPtr(v))
	if created.IsFailure() {
		return created.Err()
	}
	*n = created.Value()
	return nil
}

// TextValue 零值寫入為 NULL
func (n Number) TextValue() (pgtype.Text, error) {
	return textOf(n.value), nil
}

func textPtr(v pgtype.Text) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func textOf(value string) pgtype.Text {
	if value == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: value, Valid: true}
}
