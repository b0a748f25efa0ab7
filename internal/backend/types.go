package backend

import "github.com/oookbaaa/Bridge-front-sub000/internal/model"

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	LoginIdentifier string `json:"loginIdentifier"`
	Password        string `json:"password"`
}

// AuthResponse is returned by login and registration
type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	User        model.User `json:"user"`
}

// RegisterPayload is the body of POST /auth/register. Optional fields
// carry omitempty so that fields left blank in the wizard never appear
// in the serialized payload.
type RegisterPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	City      string `json:"city"`
	Cin       int    `json:"cin"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`

	LicenseNumber  string `json:"licenseNumber,omitempty"`
	Discipline     string `json:"discipline,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	BirthPlace     string `json:"birthPlace,omitempty"`
	StudyLevel     string `json:"studyLevel,omitempty"`
	Club           string `json:"club,omitempty"`
	NationalTeam   bool   `json:"nationalTeam,omitempty"`
}

// errorBody is the error envelope the backend uses
type errorBody struct {
	Message string `json:"message"`
}
