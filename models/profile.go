// models/profile.go
package models

import "time"

// Profile is the account record a write operation resolves the
// authenticated user to. Account lifecycle is owned by the auth service;
// this service only reads.
type Profile struct {
	ID        string    `bson:"id" json:"id"` // matches the auth subject
	Email     string    `bson:"email" json:"email"`
	FullName  string    `bson:"full_name" json:"full_name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	UserType  string    `bson:"user_type" json:"user_type"` // client | service_provider
	CreatedAt time.Time `bson:"created_at" json:"created_at,omitzero"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at,omitzero"`
}
