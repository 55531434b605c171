package reservation

import (
	"context"

	"github.com/agenasports/pitch-scheduler/internal/audit"
)

// Notifier pings the realtime transport after a successful mutation so
// every client replaces its snapshot. Implementations never propagate
// transport errors.
type Notifier interface {
	Notify(ctx context.Context)
}

// Auditor records what happened and who did it, off the request path.
type Auditor interface {
	Dispatch(ev audit.Event)
}
