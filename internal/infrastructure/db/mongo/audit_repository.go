package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickpost/quickpost-api/internal/core/domain"
)

const auditCollection = "audit_events"

// MongoAuditRepository appends security audit events. Events are
// write-only from the application's point of view; reads happen through
// operational tooling.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	UserID    string `bson:"user_id"`
	Action    string `bson:"action"`
	Detail    string `bson:"detail,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := mongoAuditEvent{
		UserID:    event.UserID,
		Action:    event.Action,
		Detail:    event.Detail,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
