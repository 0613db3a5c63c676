package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dept-026/membership-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names carried over from the existing deployment so the
// service can run against the same database.
const (
	MembersCollection           = "Students_name"
	LecturersCollection         = "Lecturers"
	AnnouncementsCollection     = "Announcement"
	LecturerDirectoryCollection = "Student_view_lecturers"
)

// DB wraps the Mongo client and the application database handle.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// New connects to MongoDB, verifies the connection and ensures the
// uniqueness indexes the flows rely on.
func New(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(cfg.Mongo.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.Mongo.Database),
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	slog.Info("mongodb connected",
		"database", cfg.Mongo.Database,
		"connect_timeout", cfg.Mongo.ConnectTimeout.String(),
	)

	return db, nil
}

// ensureIndexes creates the unique indexes backing the registration
// uniqueness invariants. Uniqueness checks in the flows are
// check-then-insert, so the store must enforce them independently.
func (db *DB) ensureIndexes(ctx context.Context) error {
	members := db.database.Collection(MembersCollection)
	_, err := members.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reg_no", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("member indexes: %w", err)
	}

	lecturers := db.database.Collection(LecturersCollection)
	_, err = lecturers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("lecturer indexes: %w", err)
	}

	return nil
}

// Collection returns a handle to the named collection.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Close disconnects the client.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	slog.Info("mongodb connection closed")
	return nil
}

// HealthCheck pings the primary.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb health check: %w", err)
	}
	return nil
}

// CaseInsensitiveExact builds the case-insensitive exact-match filter
// used for role and gender queries.
func CaseInsensitiveExact(value string) bson.M {
	return bson.M{"$regex": "^" + value + "$", "$options": "i"}
}
