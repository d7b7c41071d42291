// Package result 表示驗證結果：成功時帶一個值，失敗時帶至少一個錯誤(保持順序)。
// 互相獨立的驗證會全部執行後再合併，一次回報所有錯誤。
package result

import (
	apperrors "go-seat-identifier/pkg/app_errors"

	"go.uber.org/multierr"
)

// Result 成功時持有值，失敗時持有至少一個錯誤。
// 零值無效，請用 Success 或 Failure 建立。
type Result[T any] struct {
	value  T
	errors []apperrors.Error
	ok     bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure 至少需要一個錯誤，否則 panic
func Failure[T any](errs ...apperrors.Error) Result[T] {
	if len(errs) == 0 {
		panic("result: Failure requires at least one error")
	}
	copied := make([]apperrors.Error, len(errs))
	copy(copied, errs)
	return Result[T]{errors: copied}
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value 取出值；失敗時 panic，呼叫前先檢查 IsSuccess
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value called on a failed result")
	}
	return r.value
}

// Errors 回傳錯誤清單的副本，成功時為空
func (r Result[T]) Errors() []apperrors.Error {
	if len(r.errors) == 0 {
		return []apperrors.Error{}
	}
	copied := make([]apperrors.Error, len(r.errors))
	copy(copied, r.errors)
	return copied
}

// FirstError 成功時或零值 Result 時 panic
func (r Result[T]) FirstError() apperrors.Error {
	if r.ok {
		panic("result: FirstError called on a successful result")
	}
	if len(r.errors) == 0 {
		panic(errZeroResult)
	}
	return r.errors[0]
}

// Contains 檢查 err 是否在錯誤清單中
func (r Result[T]) Contains(err apperrors.Error) bool {
	for _, e := range r.errors {
		if e == err {
			return true
		}
	}
	return false
}

// Err 成功時為 nil；失敗時以 multierr 合併所有錯誤，
// errors.Is 可比對每個錯誤，multierr.Errors 可取回清單
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	failed := failedErrors(r)
	errs := make([]error, 0, len(failed))
	for _, e := range failed {
		errs = append(errs, e)
	}
	return multierr.Combine(errs...)
}

// Map 轉換成功的值；失敗直接傳遞
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{errors: failedErrors(r)}
	}
	return Success(fn(r.value))
}

// Bind 串接另一個可能失敗的驗證
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Result[U]{errors: failedErrors(r)}
	}
	return fn(r.value)
}

// Combine 合併兩個獨立驗證的結果：兩者皆成功時以 fn 組出新值，
// 否則回傳失敗，錯誤依序為 a 的錯誤再接 b 的錯誤
func Combine[A, B, C any](a Result[A], b Result[B], fn func(A, B) C) Result[C] {
	if a.ok && b.ok {
		return Success(fn(a.value, b.value))
	}
	errs := make([]apperrors.Error, 0, len(a.errors)+len(b.errors))
	if !a.ok {
		errs = append(errs, failedErrors(a)...)
	}
	if !b.ok {
		errs = append(errs, failedErrors(b)...)
	}
	return Result[C]{errors: errs}
}

// Collect 將多個結果合併成一個切片結果，依序彙整所有失敗項目的錯誤
func Collect[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []apperrors.Error
	for _, r := range results {
		if !r.ok {
			errs = append(errs, failedErrors(r)...)
			continue
		}
		values = append(values, r.value)
	}
	if len(errs) > 0 {
		return Result[[]T]{errors: errs}
	}
	return Success(values)
}

const errZeroResult = "result: zero Result has no errors; build it with Success or Failure"

// failedErrors 取出失敗結果的錯誤；零值 Result 沒有錯誤，視為呼叫端錯誤
func failedErrors[T any](r Result[T]) []apperrors.Error {
	if len(r.errors) == 0 {
		panic(errZeroResult)
	}
	return r.errors
}
