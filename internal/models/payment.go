package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written exactly once per successful gateway transaction;
// TransactionID is unique across the collection and never mutated.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	DonorEmail    string             `bson:"donorEmail" json:"donorEmail"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        string             `bson:"status" json:"status"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
