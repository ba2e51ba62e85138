package roster

import (
	"time"

	"fifty3/models"

	"github.com/google/uuid"
)

// AddNote appends a trainer note for a client.
func AddNote(notes []models.ClientNote, clientID, trainerID, text string) ([]models.ClientNote, models.ClientNote) {
	note := models.ClientNote{
		ID:              "note_" + uuid.NewString(),
		ClientID:        clientID,
		AuthorTrainerID: trainerID,
		Text:            text,
		CreatedAt:       time.Now().UTC(),
	}
	out := append([]models.ClientNote(nil), notes...)
	return append(out, note), note
}

// DeleteNote removes the note with the given id. Idempotent.
func DeleteNote(notes []models.ClientNote, id string) []models.ClientNote {
	out := make([]models.ClientNote, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// NotesFor lists a client's notes in insertion order.
func NotesFor(notes []models.ClientNote, clientID string) []models.ClientNote {
	out := make([]models.ClientNote, 0)
	for _, n := range notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out
}

// UpsertPayment records a payment status for one billing period, replacing
// any earlier record with the same (clientId, period) key.
func UpsertPayment(payments []models.PaymentRecord, rec models.PaymentRecord) []models.PaymentRecord {
	out := append([]models.PaymentRecord(nil), payments...)
	for i, p := range out {
		if p.ClientID == rec.ClientID && p.Period == rec.Period {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

// PaymentsFor lists a client's payment records.
func PaymentsFor(payments []models.PaymentRecord, clientID string) []models.PaymentRecord {
	out := make([]models.PaymentRecord, 0)
	for _, p := range payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// AddMetrics appends a body measurement snapshot, assigning a fresh id.
func AddMetrics(metrics []models.BodyMetrics, m models.BodyMetrics) ([]models.BodyMetrics, models.BodyMetrics) {
	m.ID = "metrics_" + uuid.NewString()
	out := append([]models.BodyMetrics(nil), metrics...)
	return append(out, m), m
}

// DeleteMetrics removes the snapshot with the given id. Idempotent.
func DeleteMetrics(metrics []models.BodyMetrics, id string) []models.BodyMetrics {
	out := make([]models.BodyMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// MetricsFor lists a client's measurement snapshots.
func MetricsFor(metrics []models.BodyMetrics, clientID string) []models.BodyMetrics {
	out := make([]models.BodyMetrics, 0)
	for _, m := range metrics {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	return out
}
