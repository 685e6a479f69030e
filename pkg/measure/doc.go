// Package measure provides a Stopwatch that logs labelled marks together with
// the time elapsed since the previous mark. Time and TimePromise guard the
// measured call with the outcome package, so a failing call is logged and
// returned as an Outcome instead of aborting the measurement.
package measure
