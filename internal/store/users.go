package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
)

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewUserStore(coll *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{coll: coll}
}

func (s *MongoUserStore) Create(ctx context.Context, u models.User) (*mongo.InsertOneResult, error) {
	return s.coll.InsertOne(ctx, u)
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) UpdateProfile(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
}

func (s *MongoUserStore) SearchDonors(ctx context.Context, f DonorFilter) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, donorSearchFilter(f))
	if err != nil {
		return nil, err
	}
	donors := []models.User{}
	if err := cur.All(ctx, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (s *MongoUserStore) SetStatus(ctx context.Context, email string, status models.UserStatus) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"status": status}})
}

func (s *MongoUserStore) SetRole(ctx context.Context, email string, role models.Role) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
}

func (s *MongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

// donorSearchFilter always pins status=active; the optional fields are
// AND-combined and skipped when empty.
func donorSearchFilter(f DonorFilter) bson.M {
	filter := bson.M{"status": models.UserStatusActive}
	if f.BloodGroup != "" {
		filter["bloodGroup"] = f.BloodGroup
	}
	if f.District != "" {
		filter["district"] = f.District
	}
	if f.Upazila != "" {
		filter["upazila"] = f.Upazila
	}
	return filter
}
