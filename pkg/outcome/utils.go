package outcome

import (
	"context"
	"errors"
	"reflect"

	"github.com/zeebo/errs"
)

var (
	ErrNilExpr    = errs.New("expr is nil")
	ErrNilPromise = errs.New("promise is nil")
	ErrNilFault   = errs.New("fault is nil")
	ErrGoexit     = errs.New("goroutine exited without returning")
)

// IsNil reports whether i is nil or a nil pointer, func, map, slice, chan
// or interface stored in a non-nil interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// normalize turns a recovered panic value or a rejection reason into an error.
// Errors are kept as is, strings become the message of a new error and
// anything else, a typed-nil error included, is formatted behind an
// "unknown error: " prefix.
func normalize(r any) error {
	switch v := r.(type) {
	case error:
		if !IsNil(v) {
			return v
		}
	case string:
		return errs.New("%s", v)
	}
	return errs.New("unknown error: %v", r)
}
