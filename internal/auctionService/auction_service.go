package auction

import (
	"fmt"
	"time"

	"auction-service/internal/auctionerrors"
	"auction-service/internal/evaluator"
	"auction-service/internal/models"
	"auction-service/internal/repository"
	"auction-service/utils"
)

// DefaultAuctionDuration is how long an auction runs when no deadline is
// supplied at registration.
const DefaultAuctionDuration = time.Hour

// AuctionService defines the business logic for the auction bookkeeping service
type AuctionService struct {
	repo            repository.AuctionDB
	defaultDuration time.Duration
}

// NewAuctionService creates a new AuctionService instance. A non-positive
// defaultDuration falls back to DefaultAuctionDuration.
func NewAuctionService(repo repository.AuctionDB, defaultDuration time.Duration) *AuctionService {
	if defaultDuration <= 0 {
		defaultDuration = DefaultAuctionDuration
	}
	return &AuctionService{
		repo:            repo,
		defaultDuration: defaultDuration,
	}
}

// RegisterItem validates and stores a new auctionable item. A zero
// deadline means "default": it is computed here, per item, at
// registration time, never shared across items.
func (s *AuctionService) RegisterItem(description string, startingPrice float64, deadline time.Time) (models.Item, error) {
	if description == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty description", auctionerrors.ErrInvalidInput)
	}
	if startingPrice <= 0 {
		return models.Item{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	if deadline.IsZero() {
		deadline = now.Add(s.defaultDuration)
	}

	item := models.Item{
		ItemID:        utils.GenerateID(),
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Deadline:      deadline,
		CreatedAt:     now,
	}

	if err := s.repo.CreateItem(item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item: %w", err)
	}

	return item, nil
}

// RegisterBuyer validates and stores a new buyer
func (s *AuctionService) RegisterBuyer(name string) (models.Buyer, error) {
	if name == "" {
		return models.Buyer{}, fmt.Errorf("service: %w - empty buyer name", auctionerrors.ErrInvalidInput)
	}

	buyer := models.Buyer{
		BuyerID: utils.GenerateID(),
		Name:    name,
	}

	if err := s.repo.CreateBuyer(buyer); err != nil {
		return models.Buyer{}, fmt.Errorf("service: failed to create buyer: %w", err)
	}

	return buyer, nil
}

// PlaceBid validates and records a buyer's bid for an item. The buyer
// must exist; acceptance against the item's current price is decided
// atomically by the store, so a rejected bid is never persisted.
func (s *AuctionService) PlaceBid(itemID, buyerID string, value float64) (models.Bid, error) {
	if itemID == "" || buyerID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or buyerID", auctionerrors.ErrInvalidInput)
	}
	if value <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid value", auctionerrors.ErrInvalidInput)
	}

	if _, err := s.repo.GetBuyer(buyerID); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to resolve buyer %s: %w", buyerID, err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ItemID:    itemID,
		BuyerID:   buyerID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.RecordBidForItem(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %s by buyer %s: %w", itemID, buyerID, err)
	}

	return bid, nil
}

// ListItems returns the listing projection of every item in store order
func (s *AuctionService) ListItems() ([]models.ItemListing, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}

	now := time.Now().UTC()
	listings := make([]models.ItemListing, 0, len(items))
	for _, item := range items {
		listings = append(listings, projectListing(item, now))
	}
	return listings, nil
}

// GetItemListing returns the listing projection of a single item
func (s *AuctionService) GetItemListing(itemID string) (models.ItemListing, error) {
	if itemID == "" {
		return models.ItemListing{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.ItemListing{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}

	return projectListing(item, time.Now().UTC()), nil
}

// projectListing assembles the externally visible shape of an item
func projectListing(item models.Item, now time.Time) models.ItemListing {
	return models.ItemListing{
		ItemID:        item.ItemID,
		Description:   item.Description,
		CurrentPrice:  item.CurrentPrice,
		TimeRemaining: evaluator.TimeRemaining(item, now).Seconds(),
	}
}

// GetBidsForItem returns all accepted bids for a specific item
func (s *AuctionService) GetBidsForItem(itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific item
func (s *AuctionService) GetWinningBid(itemID string) (models.Bid, error) {
	if itemID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}

	winningBid, err := s.repo.GetWinningBid(itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
	}

	return winningBid, nil
}

// GetItemsByBuyer returns all items a buyer has placed bids on
func (s *AuctionService) GetItemsByBuyer(buyerID string) ([]models.Item, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: %w - empty buyer ID", auctionerrors.ErrInvalidInput)
	}

	items, err := s.repo.GetItemsByBuyer(buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items for buyer %s: %w", buyerID, err)
	}

	return items, nil
}
