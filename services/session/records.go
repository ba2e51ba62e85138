package session

import (
	"fifty3/models"
	"fifty3/services/roster"
)

// AddNote stores a trainer note for an existing client.
func (c *Controller) AddNote(clientID, trainerID, text string) (models.ClientNote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := roster.Find(c.agg.Clients, clientID); !ok {
		return models.ClientNote{}, ErrClientNotFound
	}
	notes, note := roster.AddNote(c.agg.Notes, clientID, trainerID, text)
	c.agg.Notes = notes
	c.persist()
	return note, nil
}

// Notes lists a client's notes.
func (c *Controller) Notes(clientID string) []models.ClientNote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return roster.NotesFor(c.agg.Notes, clientID)
}

// DeleteNote removes a note by id. Idempotent.
func (c *Controller) DeleteNote(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agg.Notes = roster.DeleteNote(c.agg.Notes, id)
	c.persist()
}

// UpsertPayment records a payment status for one billing period.
func (c *Controller) UpsertPayment(rec models.PaymentRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := roster.Find(c.agg.Clients, rec.ClientID); !ok {
		return ErrClientNotFound
	}
	c.agg.Payments = roster.UpsertPayment(c.agg.Payments, rec)
	c.persist()
	return nil
}

// Payments lists a client's payment records.
func (c *Controller) Payments(clientID string) []models.PaymentRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return roster.PaymentsFor(c.agg.Payments, clientID)
}

// AddMetrics stores a body measurement snapshot for an existing client.
func (c *Controller) AddMetrics(m models.BodyMetrics) (models.BodyMetrics, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := roster.Find(c.agg.Clients, m.ClientID); !ok {
		return models.BodyMetrics{}, ErrClientNotFound
	}
	metrics, created := roster.AddMetrics(c.agg.Metrics, m)
	c.agg.Metrics = metrics
	c.persist()
	return created, nil
}

// Metrics lists a client's measurement snapshots.
func (c *Controller) Metrics(clientID string) []models.BodyMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return roster.MetricsFor(c.agg.Metrics, clientID)
}

// DeleteMetrics removes a snapshot by id. Idempotent.
func (c *Controller) DeleteMetrics(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agg.Metrics = roster.DeleteMetrics(c.agg.Metrics, id)
	c.persist()
}

func dropNotes(notes []models.ClientNote, clientID string) []models.ClientNote {
	out := make([]models.ClientNote, 0, len(notes))
	for _, n := range notes {
		if n.ClientID != clientID {
			out = append(out, n)
		}
	}
	return out
}

func dropPayments(payments []models.PaymentRecord, clientID string) []models.PaymentRecord {
	out := make([]models.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		if p.ClientID != clientID {
			out = append(out, p)
		}
	}
	return out
}

func dropMetrics(metrics []models.BodyMetrics, clientID string) []models.BodyMetrics {
	out := make([]models.BodyMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.ClientID != clientID {
			out = append(out, m)
		}
	}
	return out
}
