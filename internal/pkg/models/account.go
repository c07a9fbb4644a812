package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Account represents a customer or admin account document.
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	Password       string             `bson:"password" json:"-"`
	FullName       string             `bson:"fullName" json:"full_name"`
	Role           string             `bson:"role" json:"role"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profile_picture,omitempty"`
	Location       GeoLocation        `bson:"location" json:"location"`
	IsActive       bool               `bson:"isActive" json:"is_active"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updated_at"`
}
