// Package roster manages the client list and the per-client bookkeeping
// records (notes, payments, body metrics). Like the slot ledger, every
// mutation is pure and returns a new collection.
package roster

import (
	"strings"

	"fifty3/models"

	"github.com/google/uuid"
)

// Add appends a new active client built from input and returns the grown
// list together with the created record.
func Add(clients []models.Client, input models.ClientInput) ([]models.Client, models.Client) {
	input = input.Trimmed()
	client := models.Client{
		ID:       "client_" + uuid.NewString(),
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     models.RoleClient,
		Active:   true,
	}
	out := append([]models.Client(nil), clients...)
	return append(out, client), client
}

// Update replaces the mutable fields of the client with the given id.
// Unknown ids are a no-op.
func Update(clients []models.Client, id string, input models.ClientInput) []models.Client {
	input = input.Trimmed()
	out := append([]models.Client(nil), clients...)
	for i, c := range out {
		if c.ID == id {
			c.FullName = input.FullName
			c.Email = input.Email
			c.Phone = input.Phone
			c.Active = input.Active
			out[i] = c
			break
		}
	}
	return out
}

// Remove deletes the client with the given id. The caller must also strip
// the id from the slot ledger and the bookkeeping records; the cascade spans
// components and is not enforced here.
func Remove(clients []models.Client, id string) []models.Client {
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the client with the given id, if present.
func Find(clients []models.Client, id string) (models.Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// Query narrows a listing. Zero values mean "no constraint".
type Query struct {
	Role       models.Role
	ActiveOnly bool
	Search     string
}

// Filter applies q to the list: exact role match, active flag, and a
// case-insensitive substring search across name, email and phone.
func Filter(clients []models.Client, q Query) []models.Client {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if q.Role != "" && c.Role != q.Role {
			continue
		}
		if q.ActiveOnly && !c.Active {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c models.Client, needle string) bool {
	return strings.Contains(strings.ToLower(c.FullName), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(strings.ToLower(c.Phone), needle)
}
