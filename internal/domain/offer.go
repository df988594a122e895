package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a dealer-submitted proposal attached to a locked or negotiating
// group. Price is stored as whole rupees — display formatting is a
// presentation concern. Offers are never deleted; the only mutation after
// creation is the vote counter.
type Offer struct {
	ID           uuid.UUID `json:"id"`
	GroupID      uuid.UUID `json:"group_id"`
	DealerName   string    `json:"dealer_name"`
	Price        int64     `json:"price"`
	DeliveryTime string    `json:"delivery_time"`
	BonusItems   string    `json:"bonus_items"`
	Votes        int       `json:"votes"`
	CreatedAt    time.Time `json:"created_at"`
}
