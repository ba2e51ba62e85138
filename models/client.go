package models

import "strings"

// Role classifies a person on the roster.
type Role string

const (
	RoleTrainer Role = "TRAINER"
	RoleClient  Role = "CLIENT"
)

// Client is a roster entry. ID is opaque and generated at creation time.
type Client struct {
	ID       string `bson:"id" json:"id"`
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Role     Role   `bson:"role" json:"role"`
	Active   bool   `bson:"active" json:"active"`
}

// ClientInput carries the mutable fields for add/update operations.
type ClientInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Active   bool   `json:"active"`
}

// Trimmed returns a copy with surrounding whitespace stripped from all string fields.
func (in ClientInput) Trimmed() ClientInput {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}
