package outcome

import (
	"context"
	"sync"
)

// Promise is a value that becomes available later. It settles once, either
// fulfilled with a T or rejected with an arbitrary reason.
type Promise[T any] struct {
	once     sync.Once
	done     chan struct{}
	val      T
	reason   any
	rejected bool
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// NewPromise returns a pending promise with its resolve and reject functions.
// Only the first call to either of them has an effect.
func NewPromise[T any]() (*Promise[T], func(T), func(any)) {
	p := newPromise[T]()
	return p, p.resolve, p.reject
}

// Go runs fn on a new goroutine. A returned error or a panic rejects the
// promise; a panic rejects it with the recovered value. If fn calls
// runtime.Goexit the promise is rejected with ErrGoexit.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := newPromise[T]()

	go func() {
		returned := false
		defer func() {
			r := recover()
			switch {
			case r != nil:
				p.reject(r)
			case !returned:
				p.reject(ErrGoexit)
			}
		}()

		v, err := fn()
		returned = true
		if err != nil {
			p.reject(err)
			return
		}
		p.resolve(v)
	}()

	return p
}

func Resolved[T any](v T) *Promise[T] {
	p := newPromise[T]()
	p.resolve(v)
	return p
}

func Rejected[T any](reason any) *Promise[T] {
	p := newPromise[T]()
	p.reject(reason)
	return p
}

// WithContext returns a promise that settles like p, or is rejected with
// ctx.Err() when ctx finishes first. A nil ctx never finishes.
func WithContext[T any](ctx context.Context, p *Promise[T]) *Promise[T] {
	if p == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	raced := newPromise[T]()

	go func() {
		select {
		case <-p.done:
			raced.settleFrom(p)
		case <-ctx.Done():
			raced.reject(ctx.Err())
		}
	}()

	return raced
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[T]) resolve(v T) {
	p.once.Do(func() {
		p.val = v
		close(p.done)
	})
}

func (p *Promise[T]) reject(reason any) {
	p.once.Do(func() {
		p.reason = reason
		p.rejected = true
		close(p.done)
	})
}

func (p *Promise[T]) settleFrom(src *Promise[T]) {
	if src.rejected {
		p.reject(src.reason)
		return
	}
	p.resolve(src.val)
}

// wait blocks until p settles.
func (p *Promise[T]) wait() (T, any, bool) {
	<-p.done
	return p.val, p.reason, p.rejected
}
