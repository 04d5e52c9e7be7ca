package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/services/stripe"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/store"
)

type mockUserStore struct {
	CreateFunc        func(ctx context.Context, u models.User) (*mongo.InsertOneResult, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*models.User, error)
	AllFunc           func(ctx context.Context) ([]models.User, error)
	UpdateProfileFunc func(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error)
	SearchDonorsFunc  func(ctx context.Context, f store.DonorFilter) ([]models.User, error)
	SetStatusFunc     func(ctx context.Context, email string, status models.UserStatus) (*mongo.UpdateResult, error)
	SetRoleFunc       func(ctx context.Context, email string, role models.Role) (*mongo.UpdateResult, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockUserStore) Create(ctx context.Context, u models.User) (*mongo.InsertOneResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) All(ctx context.Context) ([]models.User, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, email, fields)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockUserStore) SearchDonors(ctx context.Context, f store.DonorFilter) ([]models.User, error) {
	if m.SearchDonorsFunc != nil {
		return m.SearchDonorsFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockUserStore) SetStatus(ctx context.Context, email string, status models.UserStatus) (*mongo.UpdateResult, error) {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, email, status)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockUserStore) SetRole(ctx context.Context, email string, role models.Role) (*mongo.UpdateResult, error) {
	if m.SetRoleFunc != nil {
		return m.SetRoleFunc(ctx, email, role)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockUserStore) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockRequestStore struct {
	CreateFunc          func(ctx context.Context, r models.DonationRequest) (*mongo.InsertOneResult, error)
	FindByIDFunc        func(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error)
	PageByRequesterFunc func(ctx context.Context, email string, page store.RequestPage) ([]models.DonationRequest, int64, error)
	PageAllFunc         func(ctx context.Context, page store.RequestPage) ([]models.DonationRequest, int64, error)
	PendingFunc         func(ctx context.Context) ([]models.DonationRequest, error)
	SetStatusFunc       func(ctx context.Context, id primitive.ObjectID, status models.DonationStatus) (*mongo.UpdateResult, error)
	EditFunc            func(ctx context.Context, id primitive.ObjectID, fields bson.M, requesterEmail string) (*mongo.UpdateResult, error)
	ClaimFunc           func(ctx context.Context, id primitive.ObjectID, donorName, donorEmail string, at time.Time) (*mongo.UpdateResult, error)
	DeleteFunc          func(ctx context.Context, id primitive.ObjectID, requesterEmail string) (*mongo.DeleteResult, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *mockRequestStore) Create(ctx context.Context, r models.DonationRequest) (*mongo.InsertOneResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockRequestStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestStore) PageByRequester(ctx context.Context, email string, page store.RequestPage) ([]models.DonationRequest, int64, error) {
	if m.PageByRequesterFunc != nil {
		return m.PageByRequesterFunc(ctx, email, page)
	}
	return nil, 0, nil
}

func (m *mockRequestStore) PageAll(ctx context.Context, page store.RequestPage) ([]models.DonationRequest, int64, error) {
	if m.PageAllFunc != nil {
		return m.PageAllFunc(ctx, page)
	}
	return nil, 0, nil
}

func (m *mockRequestStore) Pending(ctx context.Context) ([]models.DonationRequest, error) {
	if m.PendingFunc != nil {
		return m.PendingFunc(ctx)
	}
	return nil, nil
}

func (m *mockRequestStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.DonationStatus) (*mongo.UpdateResult, error) {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockRequestStore) Edit(ctx context.Context, id primitive.ObjectID, fields bson.M, requesterEmail string) (*mongo.UpdateResult, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, id, fields, requesterEmail)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockRequestStore) Claim(ctx context.Context, id primitive.ObjectID, donorName, donorEmail string, at time.Time) (*mongo.UpdateResult, error) {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, id, donorName, donorEmail, at)
	}
	return &mongo.UpdateResult{}, nil
}

func (m *mockRequestStore) Delete(ctx context.Context, id primitive.ObjectID, requesterEmail string) (*mongo.DeleteResult, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, requesterEmail)
	}
	return &mongo.DeleteResult{}, nil
}

func (m *mockRequestStore) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockPaymentStore struct {
	CreateFunc      func(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error)
	ExistsFunc      func(ctx context.Context, txID string) (bool, error)
	HistoryFunc     func(ctx context.Context) ([]models.Payment, error)
	TotalAmountFunc func(ctx context.Context) (float64, error)
}

func (m *mockPaymentStore) Create(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockPaymentStore) ExistsByTransactionID(ctx context.Context, txID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, txID)
	}
	return false, nil
}

func (m *mockPaymentStore) History(ctx context.Context) ([]models.Payment, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx)
	}
	return nil, nil
}

func (m *mockPaymentStore) TotalAmount(ctx context.Context) (float64, error) {
	if m.TotalAmountFunc != nil {
		return m.TotalAmountFunc(ctx)
	}
	return 0, nil
}

type mockGateway struct {
	CreateFunc   func(ctx context.Context, p stripe.CheckoutParams) (*stripe.Session, error)
	RetrieveFunc func(ctx context.Context, id string) (*stripe.Session, error)
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, p stripe.CheckoutParams) (*stripe.Session, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return &stripe.Session{}, nil
}

func (m *mockGateway) RetrieveSession(ctx context.Context, id string) (*stripe.Session, error) {
	if m.RetrieveFunc != nil {
		return m.RetrieveFunc(ctx, id)
	}
	return &stripe.Session{}, nil
}
