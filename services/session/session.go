// Package session owns the in-memory aggregate for the running process.
// Every mutation builds a fresh copy through the pure roster/schedule
// functions, installs it, and hands a snapshot to the persistence bridge
// asynchronously; reads always come from memory, never from the stores.
package session

import (
	"fmt"
	"sync"

	"fifty3/models"
	"fifty3/services/roster"
	"fifty3/services/schedule"
)

// ErrClientNotFound rejects operations against an unknown client id.
var ErrClientNotFound = fmt.Errorf("client not found")

// Persister receives aggregate snapshots after each mutation. The state
// bridge satisfies this; its writes are fire-and-forget.
type Persister interface {
	Save(agg models.Aggregate)
}

// Controller guards the aggregate. The gym has one logical actor per
// browser session, but HTTP handlers may run concurrently, so access is
// serialized here.
type Controller struct {
	mu     sync.RWMutex
	agg    models.Aggregate
	bridge Persister
}

func NewController(agg models.Aggregate, bridge Persister) *Controller {
	return &Controller{agg: agg, bridge: bridge}
}

// persist hands a deep copy to the bridge. Must be called with mu held.
func (c *Controller) persist() {
	if c.bridge != nil {
		c.bridge.Save(c.agg.Clone())
	}
}

// Snapshot returns a deep copy of the current aggregate.
func (c *Controller) Snapshot() models.Aggregate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.agg.Clone()
}

// ---------- client registry ----------

// Clients lists roster entries narrowed by q.
func (c *Controller) Clients(q roster.Query) []models.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return roster.Filter(c.agg.Clients, q)
}

// AddClient registers a new active client.
func (c *Controller) AddClient(input models.ClientInput) models.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	clients, created := roster.Add(c.agg.Clients, input)
	c.agg.Clients = clients
	c.persist()
	return created
}

// UpdateClient replaces the mutable fields of an existing client.
func (c *Controller) UpdateClient(id string, input models.ClientInput) (models.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := roster.Find(c.agg.Clients, id); !ok {
		return models.Client{}, ErrClientNotFound
	}
	c.agg.Clients = roster.Update(c.agg.Clients, id, input)
	updated, _ := roster.Find(c.agg.Clients, id)
	c.persist()
	return updated, nil
}

// DeleteClient removes a client and cascades: the id is stripped from every
// booking (empty bookings are dropped) and the client's bookkeeping records
// go with it.
func (c *Controller) DeleteClient(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := roster.Find(c.agg.Clients, id); !ok {
		return ErrClientNotFound
	}
	c.agg.Clients = roster.Remove(c.agg.Clients, id)
	c.agg.Bookings = schedule.RemoveClientEverywhere(c.agg.Bookings, id)
	c.agg.Notes = dropNotes(c.agg.Notes, id)
	c.agg.Payments = dropPayments(c.agg.Payments, id)
	c.agg.Metrics = dropMetrics(c.agg.Metrics, id)
	c.persist()
	return nil
}

// ---------- slot ledger ----------

// MonthView returns the bookings and blocked slots of one trainer's month.
func (c *Controller) MonthView(trainerID string, year, month int) ([]models.Booking, []models.BlockedSlot) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bookings := make([]models.Booking, 0)
	for _, b := range c.agg.Bookings {
		if b.TrainerID == trainerID && b.Year == year && b.Month == month {
			b.ClientIDs = append([]string(nil), b.ClientIDs...)
			bookings = append(bookings, b)
		}
	}
	blocked := make([]models.BlockedSlot, 0)
	for _, s := range c.agg.BlockedSlots {
		if s.TrainerID == trainerID && s.Year == year && s.Month == month {
			blocked = append(blocked, s)
		}
	}
	return bookings, blocked
}

// SaveSlot writes the full participant list for a slot. Rejections
// (locked slot, capacity) leave the aggregate untouched.
func (c *Controller) SaveSlot(key models.SlotKey, clientIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	bookings, err := schedule.SaveSlot(c.agg.Bookings, c.agg.BlockedSlots, key, clientIDs)
	if err != nil {
		return err
	}
	c.agg.Bookings = bookings
	c.persist()
	return nil
}

// LockSlot marks a slot unavailable. Idempotent.
func (c *Controller) LockSlot(key models.SlotKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agg.BlockedSlots = schedule.LockSlot(c.agg.BlockedSlots, key)
	c.persist()
}

// UnlockSlot clears a lock. Idempotent.
func (c *Controller) UnlockSlot(key models.SlotKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agg.BlockedSlots = schedule.UnlockSlot(c.agg.BlockedSlots, key)
	c.persist()
}
