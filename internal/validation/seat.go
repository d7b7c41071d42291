// Package validation 將座位相關的 struct tag 規則註冊到 gin 的 binding validator，
// 讓請求結構可以宣告 `binding:"required,seat_name"`。
package validation

import (
	"errors"
	"reflect"
	"strings"

	"go-seat-identifier/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagSeatRow    = "seat_row"
	TagSeatNumber = "seat_number"
	TagSeatName   = "seat_name"
)

var ErrUnsupportedEngine = errors.New("binding validator engine is not *validator.Validate")

// RegisterGinValidators 註冊到 gin 預設的 binding.Validator
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrUnsupportedEngine
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	rules := []struct {
		tag string
		fn  validator.Func
	}{
		{TagSeatRow, validSeatRow},
		{TagSeatNumber, validSeatNumber},
		{TagSeatName, validSeatName},
	}
	for _, rule := range rules {
		if err := v.RegisterValidation(rule.tag, rule.fn); err != nil {
			return err
		}
	}
	return nil
}

func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

func validSeatRow(fl validator.FieldLevel) bool {
	raw, ok := stringField(fl)
	if !ok || strings.Contains(raw, model.SeatNameSeparator) {
		return false
	}
	return model.CreateRow(&raw).IsSuccess()
}

func validSeatNumber(fl validator.FieldLevel) bool {
	raw, ok := stringField(fl)
	if !ok || strings.Contains(raw, model.SeatNameSeparator) {
		return false
	}
	return model.CreateNumber(&raw).IsSuccess()
}

func validSeatName(fl validator.FieldLevel) bool {
	raw, ok := stringField(fl)
	if !ok {
		return false
	}
	return model.ConvertSeatNameFromString(&raw).IsSuccess()
}
