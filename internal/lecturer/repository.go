package lecturer

import (
	"context"
	"time"

	"github.com/dept-026/membership-api/internal/model"
	"github.com/dept-026/membership-api/internal/shared/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the lecturer persistence contract. Lookups that miss
// return mongo.ErrNoDocuments.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*model.Lecturer, error)
	FindByPhone(ctx context.Context, phone string) (*model.Lecturer, error)
	Insert(ctx context.Context, lecturer *model.Lecturer) error
	UpdatePassword(ctx context.Context, email, hashedPassword string) error
	SetResetOTP(ctx context.Context, email, code string, expiry time.Time) error
	ConsumeResetOTP(ctx context.Context, email, hashedPassword string) error
	FindAll(ctx context.Context) ([]model.Lecturer, error)
}

// DirectoryRepository reads the student-facing lecturer directory,
// a projection populated by an external process.
type DirectoryRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
}

var listProjection = bson.M{"_id": 0, "password": 0, "reset_otp": 0, "otp_expiry": 0}

type MongoRepository struct {
	db *database.DB
}

func NewMongoRepository(db *database.DB) *MongoRepository {
	return &MongoRepository{db: db}
}

func (r *MongoRepository) collection() *mongo.Collection {
	return r.db.Collection(database.LecturersCollection)
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Lecturer, error) {
	var lecturer model.Lecturer
	if err := r.collection().FindOne(ctx, filter).Decode(&lecturer); err != nil {
		return nil, err
	}
	return &lecturer, nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*model.Lecturer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) FindByPhone(ctx context.Context, phone string) (*model.Lecturer, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *MongoRepository) Insert(ctx context.Context, lecturer *model.Lecturer) error {
	_, err := r.collection().InsertOne(ctx, lecturer)
	return err
}

func (r *MongoRepository) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password": hashedPassword}},
	)
	return err
}

func (r *MongoRepository) SetResetOTP(ctx context.Context, email, code string, expiry time.Time) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"reset_otp": code, "otp_expiry": expiry}},
	)
	return err
}

// ConsumeResetOTP sets the new password and removes the OTP fields in a
// single update, so a consumed code can never be replayed.
func (r *MongoRepository) ConsumeResetOTP(ctx context.Context, email, hashedPassword string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":   bson.M{"password": hashedPassword},
			"$unset": bson.M{"reset_otp": "", "otp_expiry": ""},
		},
	)
	return err
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]model.Lecturer, error) {
	cursor, err := r.collection().Find(ctx, bson.M{}, options.Find().SetProjection(listProjection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lecturers []model.Lecturer
	if err := cursor.All(ctx, &lecturers); err != nil {
		return nil, err
	}
	return lecturers, nil
}

type MongoDirectoryRepository struct {
	db *database.DB
}

func NewMongoDirectoryRepository(db *database.DB) *MongoDirectoryRepository {
	return &MongoDirectoryRepository{db: db}
}

func (r *MongoDirectoryRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.db.Collection(database.LecturerDirectoryCollection).
		Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []bson.M
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
