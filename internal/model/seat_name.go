package model

import (
	"strings"

	apperrors "go-seat-identifier/pkg/app_errors"
	"go-seat-identifier/pkg/result"

	"go.uber.org/zap/zapcore"
)

// SeatNameSeparator 分隔排號與座號，例如 "1-A1"
const SeatNameSeparator = "-"

// SeatName 座位名稱：由 Row 與 Number 組成的不可變值物件。
// 只能透過 CreateSeatName / ConvertSeatNameFromString 建立；零值無效，可用 IsZero 判斷。
type SeatName struct {
	row    Row
	number Number
}

// CreateSeatName 分別驗證排號與座號，所有錯誤一併回傳(排號錯誤在前)。
// 例外：排號或座號含有分隔符號 "-" 時，會在欄位錯誤之後附加 ErrSeatNameInvalidFormat；
// 這是此路徑唯一回報座位名稱層級錯誤的情況，確保 String() 的結果一定能被解析回來。
func CreateSeatName(row, number *string) result.Result[SeatName] {
	fields := result.Combine(CreateRow(row), CreateNumber(number), func(r Row, n Number) SeatName {
		return SeatName{row: r, number: n}
	})

	if !containsSeparator(row) && !containsSeparator(number) {
		return fields
	}

	errs := append(fields.Errors(), apperrors.ErrSeatNameInvalidFormat)
	return result.Failure[SeatName](errs...)
}

// ConvertSeatNameFromString 解析 "<row>-<number>" 格式的座位名稱
func ConvertSeatNameFromString(raw *string) result.Result[SeatName] {
	return parseSeatName(raw)
}

// CreateSeatNameFromString 與 ConvertSeatNameFromString 行為相同
func CreateSeatNameFromString(raw *string) result.Result[SeatName] {
	return parseSeatName(raw)
}

// ParseSeatNames 批次解析，失敗項目的錯誤依輸入順序彙整
func ParseSeatNames(raws []string) result.Result[[]SeatName] {
	results := make([]result.Result[SeatName], 0, len(raws))
	for i := range raws {
		results = append(results, parseSeatName(&raws[i]))
	}
	return result.Collect(results)
}

func parseSeatName(raw *string) result.Result[SeatName] {
	// 1. 空值檢查
	if raw == nil || *raw == "" {
		return result.Failure[SeatName](apperrors.ErrSeatNameIsNullOrEmpty)
	}

	// 2. 格式檢查：剛好一個分隔符號，兩側皆非空
	rowPart, numberPart, ok := splitSeatName(*raw)
	if !ok {
		return result.Failure[SeatName](apperrors.ErrSeatNameInvalidFormat)
	}

	// 3. 欄位驗證；此路徑的欄位錯誤一律以 InvalidFormat 回報
	created := CreateSeatName(&rowPart, &numberPart)
	if created.IsFailure() {
		return result.Failure[SeatName](apperrors.ErrSeatNameInvalidFormat)
	}
	return created
}

func splitSeatName(raw string) (string, string, bool) {
	if strings.Count(raw, SeatNameSeparator) != 1 {
		return "", "", false
	}
	rowPart, numberPart, _ := strings.Cut(raw, SeatNameSeparator)
	if rowPart == "" || numberPart == "" {
		return "", "", false
	}
	return rowPart, numberPart, true
}

func containsSeparator(raw *string) bool {
	return raw != nil && strings.Contains(*raw, SeatNameSeparator)
}

func (s SeatName) Row() Row {
	return s.row
}

func (s SeatName) Number() Number {
	return s.number
}

func (s SeatName) IsZero() bool {
	return s == SeatName{}
}

func (s SeatName) String() string {
	return s.row.value + SeatNameSeparator + s.number.value
}

// Compare 先比排號再比座號
func (s SeatName) Compare(other SeatName) int {
	if c := s.row.Compare(other.row); c != 0 {
		return c
	}
	return s.number.Compare(other.number)
}

func (s SeatName) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return nil, apperrors.ErrSeatNameIsNullOrEmpty
	}
	return []byte(s.String()), nil
}

// UnmarshalText 走字串解析路徑；失敗時不修改接收者
func (s *SeatName) UnmarshalText(text []byte) error {
	raw := string(text)
	parsed := parseSeatName(&raw)
	if parsed.IsFailure() {
		return parsed.Err()
	}
	*s = parsed.Value()
	return nil
}

func (s SeatName) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("row", s.row.value)
	enc.AddString("number", s.number.value)
	return nil
}
