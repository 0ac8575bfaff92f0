package ports

import (
	"context"
	"time"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

// AuthEventInput is the DTO handed to the audit pipeline.
type AuthEventInput struct {
	AccountID string
	Kind      domain.AuthEventKind
	Timestamp time.Time
	RemoteIP  string
}

// AuditRepository persists auth audit trail entries.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes audit events coming off the dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, event AuthEventInput) error
}
