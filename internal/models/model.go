package models

import "time"

// Buyer represents an identity permitted to place bids
type Buyer struct {
	BuyerID string `json:"buyer_id"`
	Name    string `json:"name"`
}

// Item represents an auctionable listing. CurrentPrice is denormalized:
// it starts at StartingPrice and is advanced by the store whenever a bid
// is accepted, so reads never scan the bid history.
type Item struct {
	ItemID        string    `json:"item_id"`
	Description   string    `json:"description"`
	StartingPrice float64   `json:"starting_price"`
	CurrentPrice  float64   `json:"current_price"`
	Deadline      time.Time `json:"auction_deadline"`
	CreatedAt     time.Time `json:"created_at"`
}

// Bid represents a buyer's accepted offer on an item. Bids are immutable
// once recorded; insertion order is acceptance order.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	BuyerID   string    `json:"buyer_id"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemListing is the externally visible shape of an item for reads
type ItemListing struct {
	ItemID        string  `json:"item_id"`
	Description   string  `json:"description"`
	CurrentPrice  float64 `json:"current_price"`
	TimeRemaining float64 `json:"time_remaining"` // seconds until the deadline, negative once past
}
