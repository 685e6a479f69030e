// Package outcome provides Outcome[T], an immutable container holding either
// a success value or a fault, and capture constructors that turn panicking or
// asynchronous computations into outcomes.
//
// Constructors:
// - Ok/OkVoid/Err/ErrString/Of: build an Outcome[T] directly
// - Try/TryE: run a function and capture any panic (or returned error)
// - TryAsync/TryPromise: wait for a Promise[T] and capture its rejection
// - TryPromises: wait for several promises concurrently
//
// Whatever a captured computation panics or rejects with is normalized into
// an error: errors are kept, strings become the error message and any other
// value is reported as "unknown error: <value>". Nothing raised inside a
// capture constructor escapes it.
//
// Read an outcome with Value (comma-ok), Get, Match or Visit. MustValue and
// Expect panic on a failure.
package outcome
