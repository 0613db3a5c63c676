package announcement

import (
	"context"

	"github.com/dept-026/membership-api/internal/model"
	"github.com/dept-026/membership-api/internal/shared/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the announcement persistence contract.
type Repository interface {
	FindByText(ctx context.Context, text string) (*model.Announcement, error)
	Insert(ctx context.Context, ann *model.Announcement) error
	FindAll(ctx context.Context) ([]model.Announcement, error)
}

type MongoRepository struct {
	db *database.DB
}

func NewMongoRepository(db *database.DB) *MongoRepository {
	return &MongoRepository{db: db}
}

func (r *MongoRepository) collection() *mongo.Collection {
	return r.db.Collection(database.AnnouncementsCollection)
}

func (r *MongoRepository) FindByText(ctx context.Context, text string) (*model.Announcement, error) {
	var ann model.Announcement
	if err := r.collection().FindOne(ctx, bson.M{"announcement_text": text}).Decode(&ann); err != nil {
		return nil, err
	}
	return &ann, nil
}

func (r *MongoRepository) Insert(ctx context.Context, ann *model.Announcement) error {
	_, err := r.collection().InsertOne(ctx, ann)
	return err
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]model.Announcement, error) {
	cursor, err := r.collection().Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var anns []model.Announcement
	if err := cursor.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}
