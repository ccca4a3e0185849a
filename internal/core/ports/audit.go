package ports

import (
	"context"

	"github.com/frutech/auth-service/internal/core/domain"
)

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink accepts audit events without blocking the request path.
// Implementations may drop events under backpressure.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
