package ports

import (
	"context"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditSink accepts audit events for asynchronous recording. Record must
// not block the calling request beyond queueing.
type AuditSink interface {
	Record(event domain.AuditEvent)
}
