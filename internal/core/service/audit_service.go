package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Lokesh0728/volconBE/internal/api/metrics"
	"github.com/Lokesh0728/volconBE/internal/core/domain"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists one audit trail entry. Called from dispatcher workers,
// never from the request path.
func (s *auditService) Process(ctx context.Context, in ports.AuthEventInput) error {
	event := &domain.AuthEvent{
		AccountID: in.AccountID,
		Kind:      in.Kind,
		Timestamp: in.Timestamp,
		RemoteIP:  in.RemoteIP,
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("process auth event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(string(in.Kind)).Inc()
	s.log.Debug().
		Str("account_id", in.AccountID).
		Str("kind", string(in.Kind)).
		Msg("auth event recorded")

	return nil
}
