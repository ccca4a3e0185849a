package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frutech/auth-service/internal/core/domain"
)

// MongoAuditRepository appends auth audit events to a collection.
// Events are write-only from this service's point of view.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database, collection string) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(collection)}
}

type mongoAuditEvent struct {
	Action    string `bson:"action"`
	Username  string `bson:"username,omitempty"`
	UserID    string `bson:"user_id,omitempty"`
	Success   bool   `bson:"success"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Action:    event.Action,
		Username:  event.Username,
		UserID:    event.UserID,
		Success:   event.Success,
		Reason:    event.Reason,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
