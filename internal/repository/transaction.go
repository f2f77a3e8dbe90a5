package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
)

// TransactionRepository stores payment transactions, keyed by session_id.
type TransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{coll: db.Collection(CollTransactions)}
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.PaymentTransaction) error {
	if _, err := r.coll.InsertOne(ctx, tx); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// FindBySessionID returns the transaction, or (nil, nil) when no record matches.
func (r *TransactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	var tx domain.PaymentTransaction
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return &tx, nil
}

// UpdateStatus overwrites the provider-reported payment status and the local
// status after a reconciliation poll.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error {
	update := bson.M{"$set": bson.M{
		"payment_status": paymentStatus,
		"status":         status,
		"updated_at":     time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update); err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	return nil
}

// RecordWebhook stores the event that last touched the transaction alongside
// the payment status it reported.
func (r *TransactionRepository) RecordWebhook(ctx context.Context, sessionID, paymentStatus, eventID, eventType string) error {
	update := bson.M{"$set": bson.M{
		"payment_status":     paymentStatus,
		"webhook_event_id":   eventID,
		"webhook_event_type": eventType,
		"updated_at":         time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update); err != nil {
		return fmt.Errorf("failed to record webhook: %w", err)
	}
	return nil
}
