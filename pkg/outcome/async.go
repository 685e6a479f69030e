package outcome

import "sync"

// TryAsync obtains a pending result from fn and waits for it with TryPromise.
// A nil fn yields ErrNilExpr; a panic while obtaining the promise is captured
// the same way Try captures it.
func TryAsync[T any](fn func() *Promise[T]) Outcome[T] {
	if fn == nil {
		return Err[T](ErrNilExpr)
	}

	p := Try(fn)
	if p.IsError() {
		return Err[T](p.Fault())
	}

	return TryPromise(p.value)
}

// TryPromise blocks the calling goroutine until p settles. A rejection
// reason is normalized into the fault. A nil p yields ErrNilPromise.
func TryPromise[T any](p *Promise[T]) Outcome[T] {
	if p == nil {
		return Err[T](ErrNilPromise)
	}

	v, reason, rejected := p.wait()
	if rejected {
		return Err[T](normalize(reason))
	}

	return Ok(v)
}

// TryPromises waits for all promises concurrently. The i-th outcome belongs
// to the i-th promise.
func TryPromises[T any](ps ...*Promise[T]) []Outcome[T] {
	res := make([]Outcome[T], len(ps))
	wg := &sync.WaitGroup{}

	for i, p := range ps {
		wg.Add(1)
		i, p := i, p // per-iteration copies (go < 1.22 loop semantics)
		go func() {
			defer wg.Done()
			res[i] = TryPromise(p)
		}()
	}

	wg.Wait()
	return res
}
