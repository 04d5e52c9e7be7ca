package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Role       Role               `bson:"role" json:"role"`
	Status     UserStatus         `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
