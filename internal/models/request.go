package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "pending"
	DonationStatusInProgress DonationStatus = "inprogress"
	DonationStatusDone       DonationStatus = "done"
	DonationStatusCanceled   DonationStatus = "canceled"
)

// ValidDonationStatus reports whether s is one of the four allowed
// donation_status values.
func ValidDonationStatus(s string) bool {
	switch DonationStatus(s) {
	case DonationStatusPending, DonationStatusInProgress, DonationStatusDone, DonationStatusCanceled:
		return true
	}
	return false
}

// DonationRequest is a blood request created by a requester and optionally
// claimed by a donor. DonorName/DonorEmail/DonationAt are set on claim only.
type DonationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName     string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	RequesterEmail    string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName     string             `bson:"recipientName,omitempty" json:"recipientName,omitempty"`
	RecipientDistrict string             `bson:"recipientDistrict,omitempty" json:"recipientDistrict,omitempty"`
	RecipientUpazila  string             `bson:"recipientUpazila,omitempty" json:"recipientUpazila,omitempty"`
	HospitalName      string             `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	FullAddress       string             `bson:"fullAddress,omitempty" json:"fullAddress,omitempty"`
	BloodGroup        string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	DonationDate      string             `bson:"donationDate,omitempty" json:"donationDate,omitempty"`
	DonationTime      string             `bson:"donationTime,omitempty" json:"donationTime,omitempty"`
	RequestMessage    string             `bson:"requestMessage,omitempty" json:"requestMessage,omitempty"`
	DonationStatus    DonationStatus     `bson:"donation_status" json:"donation_status"`
	DonorName         string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail        string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	DonationAt        *time.Time         `bson:"donationAt,omitempty" json:"donationAt,omitempty"`
}
