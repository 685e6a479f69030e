package outcome

// Try runs fn on the calling goroutine and turns a panic into a failure.
// A nil fn yields ErrNilExpr.
func Try[T any](fn func() T) (res Outcome[T]) {
	if fn == nil {
		return Err[T](ErrNilExpr)
	}

	defer func() {
		if r := recover(); r != nil {
			res = Err[T](normalize(r))
		}
	}()

	return Ok(fn())
}

// TryE is Try for functions that also report failure through a returned error.
// The returned error becomes the fault unchanged.
func TryE[T any](fn func() (T, error)) (res Outcome[T]) {
	if fn == nil {
		return Err[T](ErrNilExpr)
	}

	defer func() {
		if r := recover(); r != nil {
			res = Err[T](normalize(r))
		}
	}()

	return Of(fn())
}
