package models

// Aggregate is the complete application state, persisted as one unit on
// every mutation. The document shape matches the original browser app
// ("fifty3-state-v1"), with the bookkeeping collections added alongside.
type Aggregate struct {
	Clients      []Client        `bson:"clients" json:"clients"`
	Bookings     []Booking       `bson:"bookings" json:"bookings"`
	BlockedSlots []BlockedSlot   `bson:"blockedSlots" json:"blockedSlots"`
	Notes        []ClientNote    `bson:"notes,omitempty" json:"notes,omitempty"`
	Payments     []PaymentRecord `bson:"payments,omitempty" json:"payments,omitempty"`
	Metrics      []BodyMetrics   `bson:"metrics,omitempty" json:"metrics,omitempty"`
}

// IsEmpty reports whether the aggregate carries no data at all, in which
// case a loader should fall through to the next source.
func (a Aggregate) IsEmpty() bool {
	return len(a.Clients) == 0 && len(a.Bookings) == 0 && len(a.BlockedSlots) == 0 &&
		len(a.Notes) == 0 && len(a.Payments) == 0 && len(a.Metrics) == 0
}

// Clone returns a deep copy, so a snapshot handed to the persistence bridge
// cannot be affected by later mutations.
func (a Aggregate) Clone() Aggregate {
	out := Aggregate{
		Clients:      append([]Client(nil), a.Clients...),
		BlockedSlots: append([]BlockedSlot(nil), a.BlockedSlots...),
		Notes:        append([]ClientNote(nil), a.Notes...),
		Payments:     append([]PaymentRecord(nil), a.Payments...),
		Metrics:      append([]BodyMetrics(nil), a.Metrics...),
	}
	out.Bookings = make([]Booking, len(a.Bookings))
	for i, b := range a.Bookings {
		b.ClientIDs = append([]string(nil), b.ClientIDs...)
		out.Bookings[i] = b
	}
	return out
}
