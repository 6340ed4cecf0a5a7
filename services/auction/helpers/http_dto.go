package helpers

import "time"

// Request/Response DTOs
type RegisterItemRequest struct {
	Description     string    `json:"description" binding:"required"`
	StartingPrice   float64   `json:"starting_price" binding:"required,gt=0"`
	AuctionDeadline time.Time `json:"auction_deadline"` // optional RFC3339; zero means creation time + default duration
}

type RegisterBuyerRequest struct {
	Name string `json:"name" binding:"required"`
}

type PlaceBidRequest struct {
	ItemID  string  `json:"item_id" binding:"required"`
	BuyerID string  `json:"buyer_id" binding:"required"`
	Value   float64 `json:"value" binding:"required,gt=0"`
}

type ItemResponse struct {
	ItemID          string  `json:"item_id"`
	Description     string  `json:"description"`
	StartingPrice   float64 `json:"starting_price"`
	AuctionDeadline string  `json:"auction_deadline"`
	CreatedAt       string  `json:"created_at"`
}

type BuyerResponse struct {
	BuyerID string `json:"buyer_id"`
	Name    string `json:"name"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemID    string  `json:"item_id"`
	BuyerID   string  `json:"buyer_id"`
	Value     float64 `json:"value"`
	CreatedAt string  `json:"created_at"`
}
