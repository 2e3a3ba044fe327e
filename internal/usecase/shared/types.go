package shared

import (
	"time"

	"github.com/google/uuid"
)

// ProductSnapshot is the catalog row checkout prices a cart line from.
type ProductSnapshot struct {
	Ref           string
	Name          string
	UnitPrice     int64
	StockQuantity int
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	OwnerEmail    string
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}
