// Package schedule implements the slot ledger: bookings and blocked slots
// keyed by a (year, month, day, hour, trainerId) coordinate. All operations
// are pure; mutations return a fresh collection and never modify their input.
package schedule

import "fifty3/models"

// Gym opening hours, matching the original 14-column calendar grid.
const (
	OpeningHour = 8
	ClosingHour = 21
)

// FindBooking returns the booking at key, if any. At most one booking can
// exist per coordinate.
func FindBooking(bookings []models.Booking, key models.SlotKey) (models.Booking, bool) {
	for _, b := range bookings {
		if b.SlotKey == key {
			return b, true
		}
	}
	return models.Booking{}, false
}

// SlotParticipants returns the client ids booked at key, or an empty list.
func SlotParticipants(bookings []models.Booking, key models.SlotKey) []string {
	if b, ok := FindBooking(bookings, key); ok {
		return b.ClientIDs
	}
	return nil
}

// IsBlocked reports whether key is locked against bookings.
func IsBlocked(blocked []models.BlockedSlot, key models.SlotKey) bool {
	for _, s := range blocked {
		if s.SlotKey == key {
			return true
		}
	}
	return false
}

// LockSlot marks key as unavailable. Idempotent: locking an already locked
// slot is a no-op. An existing booking at the coordinate is left intact, but
// SaveSlot rejects further edits while the lock is active.
func LockSlot(blocked []models.BlockedSlot, key models.SlotKey) []models.BlockedSlot {
	if IsBlocked(blocked, key) {
		return blocked
	}
	out := append([]models.BlockedSlot(nil), blocked...)
	return append(out, models.BlockedSlot{SlotKey: key})
}

// UnlockSlot removes any lock at key. Idempotent.
func UnlockSlot(blocked []models.BlockedSlot, key models.SlotKey) []models.BlockedSlot {
	out := make([]models.BlockedSlot, 0, len(blocked))
	for _, s := range blocked {
		if s.SlotKey != key {
			out = append(out, s)
		}
	}
	return out
}

// SaveSlot writes clientIDs as the full participant list for key:
// an empty list deletes the booking, otherwise the booking is inserted or
// its participants replaced wholesale. The save is rejected when the slot is
// locked or when the list exceeds the per-slot cap; the returned collection
// then aliases the input unchanged.
func SaveSlot(bookings []models.Booking, blocked []models.BlockedSlot, key models.SlotKey, clientIDs []string) ([]models.Booking, error) {
	if IsBlocked(blocked, key) {
		return bookings, ErrSlotBlocked
	}
	if len(clientIDs) > models.MaxClientsPerSlot {
		return bookings, ErrSlotCapacity
	}

	if len(clientIDs) == 0 {
		if _, ok := FindBooking(bookings, key); !ok {
			return bookings, nil
		}
		out := make([]models.Booking, 0, len(bookings)-1)
		for _, b := range bookings {
			if b.SlotKey != key {
				out = append(out, b)
			}
		}
		return out, nil
	}

	ids := append([]string(nil), clientIDs...)
	out := make([]models.Booking, 0, len(bookings)+1)
	replaced := false
	for _, b := range bookings {
		if b.SlotKey == key {
			b.ClientIDs = ids
			replaced = true
		}
		out = append(out, b)
	}
	if !replaced {
		out = append(out, models.Booking{SlotKey: key, ClientIDs: ids})
	}
	return out, nil
}

// RemoveClientEverywhere strips clientID from every booking's participant
// list and drops bookings left empty. Called when a client is deleted from
// the roster, so no orphaned ids remain in the ledger.
func RemoveClientEverywhere(bookings []models.Booking, clientID string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		ids := make([]string, 0, len(b.ClientIDs))
		for _, id := range b.ClientIDs {
			if id != clientID {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		b.ClientIDs = ids
		out = append(out, b)
	}
	return out
}
