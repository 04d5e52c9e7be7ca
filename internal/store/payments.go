package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
)

type MongoPaymentStore struct {
	coll *mongo.Collection
}

func NewPaymentStore(coll *mongo.Collection) *MongoPaymentStore {
	return &MongoPaymentStore{coll: coll}
}

func (s *MongoPaymentStore) Create(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error) {
	return s.coll.InsertOne(ctx, p)
}

func (s *MongoPaymentStore) ExistsByTransactionID(ctx context.Context, txID string) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"transactionId": txID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *MongoPaymentStore) History(ctx context.Context) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *MongoPaymentStore) TotalAmount(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
