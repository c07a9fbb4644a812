package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Technician verification statuses. A technician starts as pending and
// moves exactly once to approved or rejected.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// KYCDocuments holds identity document references submitted for review.
type KYCDocuments struct {
	NationalID      string `bson:"nationalId,omitempty" json:"national_id,omitempty"`
	NationalIDImage string `bson:"nationalIdImage,omitempty" json:"national_id_image,omitempty"`
}

// Technician represents a service-provider document.
//
// AverageRating is derived: it always equals TotalRating / TotalOrders
// (0 when TotalOrders is 0) and is recomputed in the same atomic store
// update as any counter change.
type Technician struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email              string             `bson:"email" json:"email"`
	Phone              string             `bson:"phone" json:"phone"`
	Password           string             `bson:"password" json:"-"`
	FullName           string             `bson:"fullName" json:"full_name"`
	ProfilePicture     string             `bson:"profilePicture,omitempty" json:"profile_picture,omitempty"`
	Location           GeoLocation        `bson:"location" json:"location"`
	ServiceCategories  []string           `bson:"serviceCategories" json:"service_categories"`
	YearsOfExperience  int                `bson:"yearsOfExperience" json:"years_of_experience"`
	Bio                string             `bson:"bio,omitempty" json:"bio,omitempty"`
	KYCDocuments       *KYCDocuments      `bson:"kycDocuments,omitempty" json:"kyc_documents,omitempty"`
	IsVerified         bool               `bson:"isVerified" json:"is_verified"`
	VerificationStatus string             `bson:"verificationStatus" json:"verification_status"`
	IsAvailable        bool               `bson:"isAvailable" json:"is_available"`
	AverageRating      float64            `bson:"averageRating" json:"average_rating"`
	TotalRating        float64            `bson:"totalRating" json:"total_rating"`
	TotalOrders        int64              `bson:"totalOrders" json:"total_orders"`
	CreatedAt          time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updated_at"`
}
