package model

import "strings"

// Role titles used by the federation backend
const (
	RoleAdmin  = "Admin"
	RolePlayer = "Player"
)

// Role is the role record attached to a user
type Role struct {
	Title string `json:"title"`
}

// Is reports whether the role matches the given title.
// Comparison is case-insensitive because the backend is not
// consistent about role title casing.
func (r Role) Is(title string) bool {
	return strings.EqualFold(r.Title, title)
}

// License is the federation license sub-record of a user
type License struct {
	Number string `json:"number"`
}

// UploadedFile is a document attached to a user record
type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// User is the federation member record as returned by the backend
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	City      string `json:"city"`
	Cin       int    `json:"cin"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`
	IsActive  bool   `json:"isActive"`

	// Optional profile fields
	Discipline     string `json:"discipline,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	BirthPlace     string `json:"birthPlace,omitempty"`
	StudyLevel     string `json:"studyLevel,omitempty"`
	Club           string `json:"club,omitempty"`
	NationalTeam   bool   `json:"nationalTeam"`

	License *License       `json:"license,omitempty"`
	Files   []UploadedFile `json:"files,omitempty"`
}

// IsAdmin reports whether the user holds the Admin role
func (u *User) IsAdmin() bool {
	return u.Role.Is(RoleAdmin)
}
