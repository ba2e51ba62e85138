package models

import "time"

// PaymentStatus tracks a client's subscription payment for one period.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAID"
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentLate   PaymentStatus = "LATE"
)

// PaymentRecord is one client's payment bookkeeping entry for a billing
// period ("2025-01"). At most one record exists per (clientId, period).
type PaymentRecord struct {
	ClientID string        `bson:"clientId" json:"clientId"`
	Period   string        `bson:"period" json:"period"`
	Amount   float64       `bson:"amount" json:"amount"`
	Status   PaymentStatus `bson:"status" json:"status"`
}

// ClientNote is a free-form note a trainer keeps about a client.
type ClientNote struct {
	ID              string    `bson:"id" json:"id"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	AuthorTrainerID string    `bson:"authorTrainerId" json:"authorTrainerId"`
	Text            string    `bson:"text" json:"text"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BodyMetrics is a dated body measurement snapshot for a client.
// Zero-valued measurements are treated as not taken.
type BodyMetrics struct {
	ID             string  `bson:"id" json:"id"`
	ClientID       string  `bson:"clientId" json:"clientId"`
	Date           string  `bson:"date" json:"date"` // ISO "2024-02-15"
	WeightKg       float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	HeightCm       float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	BodyFatPercent float64 `bson:"bodyFatPercent,omitempty" json:"bodyFatPercent,omitempty"`
	MuscleMassKg   float64 `bson:"muscleMassKg,omitempty" json:"muscleMassKg,omitempty"`
	WaistCm        float64 `bson:"waistCm,omitempty" json:"waistCm,omitempty"`
	HipCm          float64 `bson:"hipCm,omitempty" json:"hipCm,omitempty"`
	ChestCm        float64 `bson:"chestCm,omitempty" json:"chestCm,omitempty"`
	Notes          string  `bson:"notes,omitempty" json:"notes,omitempty"`
}
