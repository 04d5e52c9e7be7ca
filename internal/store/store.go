package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
)

// DonorFilter narrows the donor search. Empty fields are not applied.
type DonorFilter struct {
	BloodGroup string
	District   string
	Upazila    string
}

// RequestPage describes one page of donation requests. Status "" or "all"
// disables the status filter.
type RequestPage struct {
	Status string
	Skip   int64
	Limit  int64
}

// UserStore persists user records. Lookup methods return (nil, nil) on a
// clean miss.
type UserStore interface {
	Create(ctx context.Context, u models.User) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error)
	SearchDonors(ctx context.Context, f DonorFilter) ([]models.User, error)
	SetStatus(ctx context.Context, email string, status models.UserStatus) (*mongo.UpdateResult, error)
	SetRole(ctx context.Context, email string, role models.Role) (*mongo.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

// RequestStore persists donation requests. Ownership is enforced at the
// filter level: a constrained update/delete that matches nothing reports a
// zero count instead of an error.
type RequestStore interface {
	Create(ctx context.Context, r models.DonationRequest) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error)
	PageByRequester(ctx context.Context, email string, page RequestPage) ([]models.DonationRequest, int64, error)
	PageAll(ctx context.Context, page RequestPage) ([]models.DonationRequest, int64, error)
	Pending(ctx context.Context) ([]models.DonationRequest, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.DonationStatus) (*mongo.UpdateResult, error)
	// Edit applies fields to the request. A non-empty requesterEmail pins the
	// filter to that requester's own record.
	Edit(ctx context.Context, id primitive.ObjectID, fields bson.M, requesterEmail string) (*mongo.UpdateResult, error)
	// Claim flips a pending request to inprogress and records the donor. It
	// matches zero documents when the request is no longer pending.
	Claim(ctx context.Context, id primitive.ObjectID, donorName, donorEmail string, at time.Time) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID, requesterEmail string) (*mongo.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

// PaymentStore persists payment records; rows are insert-only.
type PaymentStore interface {
	Create(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error)
	ExistsByTransactionID(ctx context.Context, txID string) (bool, error)
	History(ctx context.Context) ([]models.Payment, error)
	TotalAmount(ctx context.Context) (float64, error)
}
