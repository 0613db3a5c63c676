package member

import (
	"context"
	"time"

	"github.com/dept-026/membership-api/internal/model"
	"github.com/dept-026/membership-api/internal/shared/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the member persistence contract. Lookups that miss
// return mongo.ErrNoDocuments.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	FindByRegNo(ctx context.Context, regNo string) (*model.Member, error)
	FindByPhone(ctx context.Context, phone string) (*model.Member, error)
	Insert(ctx context.Context, member *model.Member) error
	UpdatePassword(ctx context.Context, regNo, hashedPassword string) error
	SetResetOTP(ctx context.Context, regNo, code string, expiry time.Time) error
	ConsumeResetOTP(ctx context.Context, regNo, hashedPassword string) error
	UpdateRole(ctx context.Context, regNo, role string) error
	FindAll(ctx context.Context) ([]model.Member, error)
	FindByGender(ctx context.Context, gender string) ([]model.Member, error)
	FindByRole(ctx context.Context, role string) ([]model.Member, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// listProjection strips the fields list endpoints must never expose.
var listProjection = bson.M{"_id": 0, "password": 0, "reset_otp": 0, "otp_expiry": 0}

type MongoRepository struct {
	db *database.DB
}

func NewMongoRepository(db *database.DB) *MongoRepository {
	return &MongoRepository{db: db}
}

func (r *MongoRepository) collection() *mongo.Collection {
	return r.db.Collection(database.MembersCollection)
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*model.Member, error) {
	var member model.Member
	if err := r.collection().FindOne(ctx, filter).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) FindByRegNo(ctx context.Context, regNo string) (*model.Member, error) {
	return r.findOne(ctx, bson.M{"reg_no": regNo})
}

func (r *MongoRepository) FindByPhone(ctx context.Context, phone string) (*model.Member, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *MongoRepository) Insert(ctx context.Context, member *model.Member) error {
	_, err := r.collection().InsertOne(ctx, member)
	return err
}

func (r *MongoRepository) UpdatePassword(ctx context.Context, regNo, hashedPassword string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"reg_no": regNo},
		bson.M{"$set": bson.M{"password": hashedPassword}},
	)
	return err
}

func (r *MongoRepository) SetResetOTP(ctx context.Context, regNo, code string, expiry time.Time) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"reg_no": regNo},
		bson.M{"$set": bson.M{"reset_otp": code, "otp_expiry": expiry}},
	)
	return err
}

// ConsumeResetOTP sets the new password and removes the OTP fields in a
// single update, so a consumed code can never be replayed.
func (r *MongoRepository) ConsumeResetOTP(ctx context.Context, regNo, hashedPassword string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"reg_no": regNo},
		bson.M{
			"$set":   bson.M{"password": hashedPassword},
			"$unset": bson.M{"reset_otp": "", "otp_expiry": ""},
		},
	)
	return err
}

func (r *MongoRepository) UpdateRole(ctx context.Context, regNo, role string) error {
	_, err := r.collection().UpdateOne(ctx,
		bson.M{"reg_no": regNo},
		bson.M{"$set": bson.M{"role": role}},
	)
	return err
}

func (r *MongoRepository) findMany(ctx context.Context, filter bson.M) ([]model.Member, error) {
	cursor, err := r.collection().Find(ctx, filter, options.Find().SetProjection(listProjection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []model.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]model.Member, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoRepository) FindByGender(ctx context.Context, gender string) ([]model.Member, error) {
	return r.findMany(ctx, bson.M{"gender": database.CaseInsensitiveExact(gender)})
}

func (r *MongoRepository) FindByRole(ctx context.Context, role string) ([]model.Member, error) {
	return r.findMany(ctx, bson.M{"role": database.CaseInsensitiveExact(role)})
}

func (r *MongoRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"role": database.CaseInsensitiveExact(role)})
}
