package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleRecord is an immutable ledger entry for a completed sale. Amount is the
// discounted revenue priced at the moment the sale completed, so later catalog
// changes never alter past records.
type SaleRecord struct {
	ID         uuid.UUID `json:"id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Amount     float64   `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}

// BackOrder is a sale request deferred because stock was insufficient when it
// arrived. It stays queued until a processing pass can fulfill it.
type BackOrder struct {
	ID              uuid.UUID `json:"id"`
	ProductID       string    `json:"product_id"`
	Quantity        int       `json:"quantity"`
	DiscountPercent float64   `json:"discount_percent"`
	QueuedAt        time.Time `json:"queued_at"`
}
