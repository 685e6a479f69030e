package measure

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/internal/logging"
	"github.com/ib-77/outcome/pkg/outcome"
)

const startLabel = "start"

// Mark is one labelled point in time recorded by a Stopwatch.
type Mark struct {
	Label   string
	Time    time.Time
	Elapsed time.Duration // since the previous mark
}

type Stopwatch struct {
	id  uuid.UUID
	log *logging.Logger
	now func() time.Time

	mu    sync.Mutex
	tag   string
	marks []Mark
}

// New creates a stopwatch and records its "start" mark. The logger is taken
// from ctx unless WithLogger is given.
func New(ctx context.Context, tag string, opts ...Option) *Stopwatch {
	o := options{
		now:    time.Now,
		logger: logging.FromContext(ctx),
	}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	sw := &Stopwatch{
		id:  id,
		log: o.logger.With(logging.Stringer("stopwatch", id)),
		now: o.now,
		tag: tag,
	}
	sw.Log(startLabel)

	return sw
}

func (s *Stopwatch) ID() uuid.UUID {
	return s.id
}

func (s *Stopwatch) Tag() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tag
}

// SetTag changes the tag used by subsequent marks. A changed tag records a
// fresh "start" mark under the new tag.
func (s *Stopwatch) SetTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tag == s.tag {
		return
	}
	s.tag = tag
	s.logLocked(startLabel)
}

// Log records a mark and writes it to the log together with the time elapsed
// since the previous mark. Log lines follow the order of Marks.
func (s *Stopwatch) Log(label string) Mark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logLocked(label)
}

// logLocked must be called with s.mu held.
func (s *Stopwatch) logLocked(label string) Mark {
	m := Mark{Label: label, Time: s.now()}
	n := len(s.marks)
	if n > 0 {
		m.Elapsed = m.Time.Sub(s.marks[n-1].Time)
	}
	s.marks = append(s.marks, m)

	s.log.Info(prefix(s.tag)+label,
		logging.String("tag", s.tag),
		logging.String("label", label),
		logging.Int("mark", n),
		logging.Time("at", m.Time),
		logging.Duration("elapsed", m.Elapsed),
		logging.Float("elapsed_s", m.Elapsed.Seconds()))

	return m
}

// Marks returns a copy of the recorded marks, oldest first.
func (s *Stopwatch) Marks() []Mark {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks := make([]Mark, len(s.marks))
	copy(marks, s.marks)
	return marks
}

// Time runs fn through outcome.Try and records a mark once it returns.
// A failure is logged; it never propagates as a panic.
func Time[T any](s *Stopwatch, label string, fn func() T) outcome.Outcome[T] {
	res := outcome.Try(fn)
	s.Log(label)
	s.report(label, res.Fault())
	return res
}

// TimePromise waits for p through outcome.TryPromise and records a mark once
// it settles.
func TimePromise[T any](s *Stopwatch, label string, p *outcome.Promise[T]) outcome.Outcome[T] {
	res := outcome.TryPromise(p)
	s.Log(label)
	s.report(label, res.Fault())
	return res
}

func (s *Stopwatch) report(label string, fault error) {
	fields := []logging.Field{
		logging.String("tag", s.Tag()),
		logging.String("label", label),
	}

	if fault == nil {
		s.log.Debug("measured call succeeded", fields...)
		return
	}
	fields = append(fields, logging.Error(fault))

	if outcome.IsCancellation(fault) {
		s.log.Warn("measured call cancelled", fields...)
		return
	}
	s.log.Error("measured call failed", fields...)
}

func prefix(tag string) string {
	if tag == "" {
		return ""
	}
	return "[" + tag + "] "
}
