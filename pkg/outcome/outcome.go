package outcome

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Void is the payload of an outcome that succeeds without a value.
type Void struct{}

// Outcome holds either a value of type T or a fault, never both.
// The zero value is a success carrying T's zero value.
type Outcome[T any] struct {
	value T
	fault error
}

func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{
		value: v,
	}
}

func OkVoid() Outcome[Void] {
	return Ok(Void{})
}

// Err builds a failure around fault as is. A nil or typed-nil fault is
// replaced by ErrNilFault so the outcome still reports an error.
func Err[T any](fault error) Outcome[T] {
	if IsNil(fault) {
		fault = ErrNilFault
	}
	return Outcome[T]{
		fault: fault,
	}
}

// ErrString builds a failure around a new error carrying msg.
func ErrString[T any](msg string) Outcome[T] {
	return Outcome[T]{
		fault: errs.New("%s", msg),
	}
}

// Of converts a conventional (value, error) pair.
func Of[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (o Outcome[T]) IsOk() bool {
	return o.fault == nil
}

func (o Outcome[T]) IsError() bool {
	return o.fault != nil
}

// Value returns the success value. ok is false for a failure, in which case
// v is T's zero value.
func (o Outcome[T]) Value() (v T, ok bool) {
	if o.fault != nil {
		return v, false
	}
	return o.value, true
}

// Fault returns the captured fault, or nil for a success.
func (o Outcome[T]) Fault() error {
	return o.fault
}

func (o Outcome[T]) Get() (T, error) {
	if o.fault != nil {
		var zero T
		return zero, o.fault
	}
	return o.value, nil
}

// MustValue returns the success value and panics if o is a failure.
// The panic value is an error wrapping the fault.
func (o Outcome[T]) MustValue() T {
	if o.fault != nil {
		panic(errs.New("value of failed outcome: %w", o.fault))
	}
	return o.value
}

// Expect is MustValue with a caller supplied panic message.
func (o Outcome[T]) Expect(msg string) T {
	if o.fault != nil {
		panic(errs.New("%s: %w", msg, o.fault))
	}
	return o.value
}

func (o Outcome[T]) ValueOr(def T) T {
	if o.fault != nil {
		return def
	}
	return o.value
}

func (o Outcome[T]) String() string {
	if o.fault != nil {
		return fmt.Sprintf("Err(%v)", o.fault)
	}
	return fmt.Sprintf("Ok(%v)", o.value)
}
