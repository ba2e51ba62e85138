package roster_test

import (
	"testing"

	"fifty3/models"
	"fifty3/services/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	clients, created := roster.Add(nil, models.ClientInput{
		FullName: "  Μαρία Πελάτης ",
		Email:    " maria@fifty3.com ",
		Phone:    "6900000010",
	})

	require.Len(t, clients, 1)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Μαρία Πελάτης", created.FullName)
	assert.Equal(t, "maria@fifty3.com", created.Email)
	assert.Equal(t, models.RoleClient, created.Role)
	assert.True(t, created.Active)

	_, second := roster.Add(clients, models.ClientInput{FullName: "Νίκος", Email: "nikos@fifty3.com"})
	assert.NotEqual(t, created.ID, second.ID)
}

func TestUpdate(t *testing.T) {
	clients, created := roster.Add(nil, models.ClientInput{FullName: "Μαρία", Email: "maria@fifty3.com"})

	t.Run("replaces mutable fields and trims", func(t *testing.T) {
		out := roster.Update(clients, created.ID, models.ClientInput{
			FullName: " Μαρία Κ. ",
			Email:    "maria.k@fifty3.com",
			Phone:    " 6900000010 ",
			Active:   false,
		})
		got, ok := roster.Find(out, created.ID)
		require.True(t, ok)
		assert.Equal(t, "Μαρία Κ.", got.FullName)
		assert.Equal(t, "6900000010", got.Phone)
		assert.False(t, got.Active)

		// Input list untouched.
		orig, _ := roster.Find(clients, created.ID)
		assert.Equal(t, "Μαρία", orig.FullName)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		out := roster.Update(clients, "nope", models.ClientInput{FullName: "x", Email: "x@x"})
		assert.Equal(t, clients, out)
	})
}

func TestRemove(t *testing.T) {
	clients, a := roster.Add(nil, models.ClientInput{FullName: "A", Email: "a@fifty3.com"})
	clients, b := roster.Add(clients, models.ClientInput{FullName: "B", Email: "b@fifty3.com"})

	out := roster.Remove(clients, a.ID)
	require.Len(t, out, 1)
	assert.Equal(t, b.ID, out[0].ID)

	assert.Equal(t, out, roster.Remove(out, a.ID))
}

func TestFilter(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", FullName: "Μαρία Πελάτης", Email: "maria@fifty3.com", Phone: "6900000010", Role: models.RoleClient, Active: true},
		{ID: "c2", FullName: "Νίκος Πελάτης", Email: "nikos@fifty3.com", Phone: "6900000011", Role: models.RoleClient, Active: false},
		{ID: "t1", FullName: "Κώστας", Email: "kostas@fifty3.com", Role: models.RoleTrainer, Active: true},
	}

	t.Run("by role", func(t *testing.T) {
		out := roster.Filter(clients, roster.Query{Role: models.RoleClient})
		assert.Len(t, out, 2)
	})

	t.Run("active only", func(t *testing.T) {
		out := roster.Filter(clients, roster.Query{Role: models.RoleClient, ActiveOnly: true})
		require.Len(t, out, 1)
		assert.Equal(t, "c1", out[0].ID)
	})

	t.Run("search is case-insensitive across name email phone", func(t *testing.T) {
		out := roster.Filter(clients, roster.Query{Search: "MARIA"})
		require.Len(t, out, 1)
		assert.Equal(t, "c1", out[0].ID)

		out = roster.Filter(clients, roster.Query{Search: "0011"})
		require.Len(t, out, 1)
		assert.Equal(t, "c2", out[0].ID)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, roster.Filter(clients, roster.Query{}), 3)
	})
}

func TestRecords(t *testing.T) {
	t.Run("notes add list delete", func(t *testing.T) {
		notes, n1 := roster.AddNote(nil, "c1", "trainer-kostas", "πρώτη προπόνηση")
		notes, _ = roster.AddNote(notes, "c2", "trainer-kostas", "other")

		mine := roster.NotesFor(notes, "c1")
		require.Len(t, mine, 1)
		assert.Equal(t, "trainer-kostas", mine[0].AuthorTrainerID)

		notes = roster.DeleteNote(notes, n1.ID)
		assert.Empty(t, roster.NotesFor(notes, "c1"))
	})

	t.Run("payment upsert is keyed by client and period", func(t *testing.T) {
		payments := roster.UpsertPayment(nil, models.PaymentRecord{ClientID: "c1", Period: "2025-01", Amount: 40, Status: models.PaymentUnpaid})
		payments = roster.UpsertPayment(payments, models.PaymentRecord{ClientID: "c1", Period: "2025-01", Amount: 40, Status: models.PaymentPaid})
		payments = roster.UpsertPayment(payments, models.PaymentRecord{ClientID: "c1", Period: "2025-02", Amount: 40, Status: models.PaymentUnpaid})

		mine := roster.PaymentsFor(payments, "c1")
		require.Len(t, mine, 2)
		assert.Equal(t, models.PaymentPaid, mine[0].Status)
	})

	t.Run("metrics add list delete", func(t *testing.T) {
		metrics, m := roster.AddMetrics(nil, models.BodyMetrics{ClientID: "c1", Date: "2025-02-15", WeightKg: 82.5})
		require.NotEmpty(t, m.ID)
		require.Len(t, roster.MetricsFor(metrics, "c1"), 1)

		metrics = roster.DeleteMetrics(metrics, m.ID)
		assert.Empty(t, roster.MetricsFor(metrics, "c1"))
	})
}
