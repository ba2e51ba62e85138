package state

import "fifty3/models"

// Seed returns the first-run demo roster, used only when neither the remote
// store nor the local mirror has data yet.
func Seed() models.Aggregate {
	return models.Aggregate{
		Clients: []models.Client{
			{
				ID:       "client_maria",
				FullName: "Μαρία Πελάτης",
				Email:    "maria@fifty3.com",
				Phone:    "6900000010",
				Role:     models.RoleClient,
				Active:   true,
			},
			{
				ID:       "client_nikos",
				FullName: "Νίκος Πελάτης",
				Email:    "nikos@fifty3.com",
				Phone:    "6900000011",
				Role:     models.RoleClient,
				Active:   true,
			},
		},
	}
}
