package models

import "time"

// Role separates the two account types on the platform.
type Role string

const (
	RolePatient         Role = "patient"
	RolePhysiotherapist Role = "physiotherapist"
)

// Known reports whether the role is one of the platform's account types.
func (r Role) Known() bool {
	return r == RolePatient || r == RolePhysiotherapist
}

// User is an account document in the "user" collection.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// UserProfile is the optional display profile in "user_profiles". Patient
// names shown on appointments and plans resolve through here first.
type UserProfile struct {
	UserID    string `bson:"userId" json:"userId"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	PhotoURL  string `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	BirthDate string `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
}

// FullName joins the profile's name fields.
func (p UserProfile) FullName() string {
	switch {
	case p.FirstName == "" && p.LastName == "":
		return ""
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
