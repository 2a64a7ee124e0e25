package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/streamlane/tbptt"
)

// Logging wraps another Consumer and logs each batch it handles along
// with any errors encountered.
type Logging[V any] struct {
	// Consumer is the wrapped consumer that does the actual work.
	Consumer Consumer[V]

	// Logger is used to log consumption events. If nil, no logging
	// occurs.
	Logger tbptt.Logger

	// Name is an optional name used in log messages. If empty, the
	// wrapped consumer's type is used.
	Name string
}

// Consume implements the Consumer interface by delegating to the wrapped
// consumer and logging the operation.
func (l *Logging[V]) Consume(ctx context.Context, b *tbptt.Batch[V]) error {
	if l.Consumer == nil {
		return nil
	}
	if l.Logger == nil {
		return l.Consumer.Consume(ctx, b)
	}

	name := l.Name
	if name == "" {
		name = fmt.Sprintf("%T", l.Consumer)
	}

	start := time.Now()
	err := l.Consumer.Consume(ctx, b)
	duration := time.Since(start)

	if err != nil {
		l.Logger.Error("consumer '%s' failed after %v: %v", name, duration, err)
	} else {
		l.Logger.Debug("consumer '%s' handled batch in %v: %d/%d lanes active, width %d",
			name, duration, b.ActiveLanes(), b.Lanes(), b.Width)
	}
	return err
}

// WrapWithLogging wraps a consumer with logging. This is a convenience
// function for creating a Logging consumer.
func WrapWithLogging[V any](c Consumer[V], logger tbptt.Logger, name string) *Logging[V] {
	return &Logging[V]{
		Consumer: c,
		Logger:   logger,
		Name:     name,
	}
}
