package models

// Trainer is an in-app trainer identity, resolved from a verified email.
type Trainer struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}
