package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
)

type MongoRequestStore struct {
	coll *mongo.Collection
}

func NewRequestStore(coll *mongo.Collection) *MongoRequestStore {
	return &MongoRequestStore{coll: coll}
}

func (s *MongoRequestStore) Create(ctx context.Context, r models.DonationRequest) (*mongo.InsertOneResult, error) {
	return s.coll.InsertOne(ctx, r)
}

func (s *MongoRequestStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error) {
	var r models.DonationRequest
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MongoRequestStore) PageByRequester(ctx context.Context, email string, page RequestPage) ([]models.DonationRequest, int64, error) {
	return s.page(ctx, pageFilter(bson.M{"requesterEmail": email}, page.Status), page)
}

func (s *MongoRequestStore) PageAll(ctx context.Context, page RequestPage) ([]models.DonationRequest, int64, error) {
	return s.page(ctx, pageFilter(bson.M{}, page.Status), page)
}

func (s *MongoRequestStore) page(ctx context.Context, filter bson.M, page RequestPage) ([]models.DonationRequest, int64, error) {
	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (s *MongoRequestStore) Pending(ctx context.Context) ([]models.DonationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{"donation_status": models.DonationStatusPending}, opts)
	if err != nil {
		return nil, err
	}
	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *MongoRequestStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.DonationStatus) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"donation_status": status}})
}

func (s *MongoRequestStore) Edit(ctx context.Context, id primitive.ObjectID, fields bson.M, requesterEmail string) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, ownershipFilter(id, requesterEmail), bson.M{"$set": fields})
}

func (s *MongoRequestStore) Claim(ctx context.Context, id primitive.ObjectID, donorName, donorEmail string, at time.Time) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"donation_status": models.DonationStatusInProgress,
		"donorName":       donorName,
		"donorEmail":      donorEmail,
		"donationAt":      at,
	}}
	return s.coll.UpdateOne(ctx, claimFilter(id), update)
}

func (s *MongoRequestStore) Delete(ctx context.Context, id primitive.ObjectID, requesterEmail string) (*mongo.DeleteResult, error) {
	return s.coll.DeleteOne(ctx, ownershipFilter(id, requesterEmail))
}

func (s *MongoRequestStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

func pageFilter(base bson.M, status string) bson.M {
	if status != "" && status != "all" {
		base["donation_status"] = status
	}
	return base
}

// ownershipFilter narrows an update/delete to the requester's own record.
// An empty email (admin path) leaves the filter on _id alone.
func ownershipFilter(id primitive.ObjectID, requesterEmail string) bson.M {
	filter := bson.M{"_id": id}
	if requesterEmail != "" {
		filter["requesterEmail"] = requesterEmail
	}
	return filter
}

// claimFilter only matches while the request is still pending, so a claim on
// an already-taken request updates nothing.
func claimFilter(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "donation_status": models.DonationStatusPending}
}
