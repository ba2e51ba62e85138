package models

// SlotKey identifies one bookable hour for one trainer.
// Month is zero-based (0 = January), matching the persisted document format.
type SlotKey struct {
	Year      int    `bson:"year" json:"year"`
	Month     int    `bson:"month" json:"month"`
	Day       int    `bson:"day" json:"day"`
	Hour      int    `bson:"hour" json:"hour"`
	TrainerID string `bson:"trainerId" json:"trainerId"`
}

// Booking assigns up to MaxClientsPerSlot clients to a slot. A booking with
// no clients must not exist; it is deleted instead.
type Booking struct {
	SlotKey   `bson:",inline"`
	ClientIDs []string `bson:"clientIds" json:"clientIds"`
}

// BlockedSlot marks a slot as unavailable for bookings, independent of any
// booking that may already exist at the same coordinate.
type BlockedSlot struct {
	SlotKey `bson:",inline"`
}

// MaxClientsPerSlot caps the participants of a single slot.
const MaxClientsPerSlot = 3
