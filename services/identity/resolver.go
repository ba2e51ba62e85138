// Package identity maps verified emails to in-app trainer identities.
// Credential verification itself is delegated to Firebase Auth (or, in
// development, to the demo password check); this package only decides who a
// verified email is inside the application.
package identity

import (
	"strings"

	"fifty3/models"
)

// The web app is for the three gym trainers only; everyone else is turned
// away with a user-visible message.
var trainers = map[string]models.Trainer{
	"kostas@fifty3.com":   {ID: "trainer-kostas", DisplayName: "Κώστας"},
	"zoe@fifty3.com":      {ID: "trainer-zoe", DisplayName: "Ζωή"},
	"dimitris@fifty3.com": {ID: "trainer-dimitris", DisplayName: "Δημήτρης"},
}

// ResolveTrainer looks up the trainer identity for a verified email.
// The second return is false when the email is not an authorized trainer.
func ResolveTrainer(email string) (models.Trainer, bool) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	t, ok := trainers[normalized]
	if !ok {
		return models.Trainer{}, false
	}
	t.Email = normalized
	return t, true
}

// ResolveTrainerByID returns the trainer with the given in-app id.
func ResolveTrainerByID(id string) (models.Trainer, bool) {
	for email, t := range trainers {
		if t.ID == id {
			t.Email = email
			return t, true
		}
	}
	return models.Trainer{}, false
}
