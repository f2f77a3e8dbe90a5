package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CollCourses      = "courses"
	CollUsers        = "users"
	CollTransactions = "payment_transactions"
)

// NewDB connects to MongoDB and verifies the connection.
func NewDB(ctx context.Context, mongoURL string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}
