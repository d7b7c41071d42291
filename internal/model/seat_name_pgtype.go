package model

import (
	apperrors "go-seat-identifier/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	_ pgtype.TextScanner = (*SeatName)(nil)
	_ pgtype.TextValuer  = SeatName{}
)

// ScanText 讓 pgx 直接把 text 欄位掃描成 SeatName，掃描時同樣經過格式驗證
func (s *SeatName) ScanText(v pgtype.Text) error {
	if !v.Valid {
		return apperrors.ErrSeatNameIsNullOrEmpty
	}
	parsed := parseSeatName(&v.String)
	if parsed.IsFailure() {
		return parsed.Err()
	}
	*s = parsed.Value()
	return nil
}

// TextValue 零值寫入為 NULL
func (s SeatName) TextValue() (pgtype.Text, error) {
	if s.IsZero() {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: s.String(), Valid: true}, nil
}
