package ticker

import (
	"context"
	"time"
)

// Ticker defines the interface for the tick service.
type Ticker interface {
	SetTickCallback(func(time.Time))
	Start(ctx context.Context) error
	Stop()
	Running() bool
	SetInterval(interval time.Duration)
}
