package apperrors

import "go.uber.org/zap/zapcore"

// Error 錯誤目錄中的項目；code 與 message 相同即相等，可用 == 及 errors.Is 比對
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

func (e Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", e.Code)
	enc.AddString("message", e.Message)
	return nil
}

var (
	// 排號錯誤
	ErrRowIsNullOrEmpty = Error{Code: "Row.IsNullOrEmpty", Message: "Row cannot be null or empty."}

	// 座號錯誤
	ErrNumberIsNullOrEmpty = Error{Code: "Number.IsNullOrEmpty", Message: "Number cannot be null or empty."}

	// 座位名稱錯誤
	ErrSeatNameIsNullOrEmpty = Error{Code: "SeatName.IsNullOrEmpty", Message: "Seat name cannot be null or empty."}
	ErrSeatNameInvalidFormat = Error{Code: "SeatName.InvalidFormat", Message: "Seat name must have the format '<row>-<number>'."}
)

// Registry 依宣告順序列出所有錯誤
var Registry = []Error{
	ErrRowIsNullOrEmpty,
	ErrNumberIsNullOrEmpty,
	ErrSeatNameIsNullOrEmpty,
	ErrSeatNameInvalidFormat,
}

// Lookup 以 code 查詢錯誤
func Lookup(code string) (Error, bool) {
	for _, e := range Registry {
		if e.Code == code {
			return e, true
		}
	}
	return Error{}, false
}
