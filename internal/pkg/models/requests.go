package models

// RegisterAccountRequest carries the fields collaborators submit when
// registering a customer or admin account. The password arrives in plain
// text and is hashed before it reaches the store.
type RegisterAccountRequest struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// RegisterTechnicianRequest carries the fields collaborators submit when
// registering a technician.
type RegisterTechnicianRequest struct {
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Password          string        `json:"password"`
	FullName          string        `json:"full_name"`
	ProfilePicture    string        `json:"profile_picture,omitempty"`
	ServiceCategories []string      `json:"service_categories"`
	YearsOfExperience int           `json:"years_of_experience"`
	Bio               string        `json:"bio,omitempty"`
	KYCDocuments      *KYCDocuments `json:"kyc_documents,omitempty"`
}

// UpdateLocationRequest carries a location update for any entity.
type UpdateLocationRequest struct {
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Address     string  `json:"address,omitempty"`
	City        string  `json:"city,omitempty"`
	Governorate string  `json:"governorate,omitempty"`
}
