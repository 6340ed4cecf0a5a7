package repository

import (
	"fmt"
	"sync"

	"auction-service/internal/auctionerrors"
	"auction-service/internal/evaluator"
	model "auction-service/internal/models"
)

// AuctionDB defines the record storage interface for the auction system
type AuctionDB interface {
	CreateItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	ListItems() ([]model.Item, error)
	CreateBuyer(buyer model.Buyer) error
	GetBuyer(buyerID string) (model.Buyer, error)
	RecordBidForItem(bid model.Bid) error
	GetBidsByItem(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
	GetItemsByBuyer(buyerID string) ([]model.Item, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu         sync.RWMutex
	items      map[string]model.Item  // key: itemID -> value: item
	itemOrder  []string               // itemIDs in creation order, the store order for listings
	buyers     map[string]model.Buyer // key: buyerID -> value: buyer
	bids       map[string][]model.Bid // key: itemID -> value: accepted bids in acceptance order
	buyerItems map[string][]string    // key: buyerID -> value: list of itemIDs buyer has bid on
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:      make(map[string]model.Item),
		buyers:     make(map[string]model.Buyer),
		bids:       make(map[string][]model.Bid),
		buyerItems: make(map[string][]string),
	}
}

// CreateItem stores a new item
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; !ok {
		r.itemOrder = append(r.itemOrder, item.ItemID)
	}
	r.items[item.ItemID] = item
	return nil
}

// GetItem returns the item with the given ID
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all items in creation order
func (r *MemoryRepo) ListItems() ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		items = append(items, r.items[id])
	}
	return items, nil
}

// CreateBuyer stores a new buyer
func (r *MemoryRepo) CreateBuyer(buyer model.Buyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buyers[buyer.BuyerID] = buyer
	return nil
}

// GetBuyer returns the buyer with the given ID
func (r *MemoryRepo) GetBuyer(buyerID string) (model.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buyer, ok := r.buyers[buyerID]
	if !ok {
		return model.Buyer{}, fmt.Errorf("get buyer %s: %w", buyerID, auctionerrors.ErrBuyerNotFound)
	}
	return buyer, nil
}

// RecordBidForItem accepts or rejects a proposed bid and, on acceptance,
// appends it to the item's history and advances the item's current
// price. Check and append happen under the same write lock, so two
// concurrent bids can never both be accepted against the same price and
// the accepted values for an item stay strictly increasing. Rejection
// leaves the store untouched.
func (r *MemoryRepo) RecordBidForItem(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[bid.ItemID]
	if !ok {
		return fmt.Errorf("record bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}

	if !evaluator.Admissible(bid.Value, item.CurrentPrice) {
		return fmt.Errorf("record bid for item %s: %w - current price is %.2f", bid.ItemID, auctionerrors.ErrBidTooLow, item.CurrentPrice)
	}

	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], bid)
	item.CurrentPrice = bid.Value
	r.items[bid.ItemID] = item

	for _, id := range r.buyerItems[bid.BuyerID] {
		if id == bid.ItemID {
			return nil
		}
	}
	r.buyerItems[bid.BuyerID] = append(r.buyerItems[bid.BuyerID], bid.ItemID)

	return nil
}

// GetBidsByItem returns all accepted bids for an item in acceptance order
func (r *MemoryRepo) GetBidsByItem(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[itemID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the highest bid for an item. Earlier bids win
// ties, though the strictly-increasing append rule makes ties impossible
// for histories recorded through RecordBidForItem.
func (r *MemoryRepo) GetWinningBid(itemID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[itemID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for item %s: %w", itemID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Value > winning.Value || (b.Value == winning.Value && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// GetItemsByBuyer returns all items a buyer has bid on
func (r *MemoryRepo) GetItemsByBuyer(buyerID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemIDs, ok := r.buyerItems[buyerID]
	if !ok || len(itemIDs) == 0 {
		return nil, fmt.Errorf("get items for buyer %s: %w", buyerID, auctionerrors.ErrBuyerNoBids)
	}

	items := make([]model.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		if item, exists := r.items[id]; exists {
			items = append(items, item)
		}
	}
	return items, nil
}
