package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Lokesh0728/volconBE/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository appends credential-lifecycle events to the audit
// trail collection. Write-only; nothing in the request path reads it.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	AccountID string `bson:"account_id"`
	Kind      string `bson:"kind"`
	Timestamp int64  `bson:"timestamp"`
	RemoteIP  string `bson:"remote_ip,omitempty"`
}

func (r *MongoAuditRepository) InsertEvent(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		AccountID: event.AccountID,
		Kind:      string(event.Kind),
		Timestamp: event.Timestamp.Unix(),
		RemoteIP:  event.RemoteIP,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
