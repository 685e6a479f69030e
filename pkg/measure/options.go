package measure

import (
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/outcome/internal/logging"
)

type options struct {
	now    func() time.Time
	logger *logging.Logger
}

type Option func(*options)

// WithClock replaces time.Now as the source of mark timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger overrides the logger taken from the context.
func WithLogger(z *zap.Logger) Option {
	return func(o *options) {
		if z != nil {
			o.logger = logging.Wrap(z)
		}
	}
}
