package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-service/internal/auctionerrors"
	model "auction-service/internal/models"
	"auction-service/services/auction/helpers"
	"auction-service/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	RegisterItem(description string, startingPrice float64, deadline time.Time) (model.Item, error)
	RegisterBuyer(name string) (model.Buyer, error)
	PlaceBid(itemID, buyerID string, value float64) (model.Bid, error)
	ListItems() ([]model.ItemListing, error)
	GetItemListing(itemID string) (model.ItemListing, error)
	GetBidsForItem(itemID string) ([]model.Bid, error)
	GetWinningBid(itemID string) (model.Bid, error)
	GetItemsByBuyer(buyerID string) ([]model.Item, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// RegisterItemHandler handles POST /items
func (h *AuctionHandler) RegisterItemHandler(c *gin.Context) {
	var req helpers.RegisterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterItemHandler", err)
		return
	}

	item, err := h.service.RegisterItem(req.Description, req.StartingPrice, req.AuctionDeadline)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterItemHandler: failed to register item", map[string]any{
			"handler":     "RegisterItemHandler",
			"description": req.Description,
			"error":       err.Error(),
		})
		return
	}

	resp := helpers.ItemResponse{
		ItemID:          item.ItemID,
		Description:     item.Description,
		StartingPrice:   item.StartingPrice,
		AuctionDeadline: item.Deadline.UTC().Format(time.RFC3339),
		CreatedAt:       item.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "item registered successfully")
	helpers.LogSuccess("RegisterItemHandler", "item registered successfully", map[string]any{
		"item_id":        item.ItemID,
		"starting_price": item.StartingPrice,
	})
}

// RegisterBuyerHandler handles POST /buyers
func (h *AuctionHandler) RegisterBuyerHandler(c *gin.Context) {
	var req helpers.RegisterBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterBuyerHandler", err)
		return
	}

	buyer, err := h.service.RegisterBuyer(req.Name)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterBuyerHandler: failed to register buyer", map[string]any{
			"handler": "RegisterBuyerHandler",
			"name":    req.Name,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BuyerResponse{
		BuyerID: buyer.BuyerID,
		Name:    buyer.Name,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "buyer registered successfully")
	helpers.LogSuccess("RegisterBuyerHandler", "buyer registered successfully", map[string]any{
		"buyer_id": buyer.BuyerID,
	})
}

// RecordBidHandler handles POST /bids
func (h *AuctionHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.ItemID, req.BuyerID, req.Value)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RecordBidHandler: failed to record bid", map[string]any{
			"handler":  "RecordBidHandler",
			"item_id":  req.ItemID,
			"buyer_id": req.BuyerID,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ItemID:    bid.ItemID,
		BuyerID:   bid.BuyerID,
		Value:     bid.Value,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":   bid.BidID,
		"item_id":  bid.ItemID,
		"buyer_id": req.BuyerID,
		"value":    bid.Value,
	})
}

// ListItemsHandler handles GET /items
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	listings, err := h.service.ListItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error listing items", map[string]any{"error": err.Error()})
		return
	}

	if listings == nil {
		listings = []model.ItemListing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	listing, err := h.service.GetItemListing(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "item retrieved successfully")
	helpers.LogSuccess("GetItemHandler", "item retrieved successfully", map[string]any{
		"item_id":        listing.ItemID,
		"current_price":  listing.CurrentPrice,
		"time_remaining": listing.TimeRemaining,
	})
}

// GetBidsByItemHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bids, err := h.service.GetBidsForItem(itemID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByItemHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetWinningBidHandler handles GET /items/:item_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	bid, err := h.service.GetWinningBid(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		// For auction, winning bid not found -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"item_id": itemID})
			return
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ItemID:    bid.ItemID,
		BuyerID:   bid.BuyerID,
		Value:     bid.Value,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":   bid.BidID,
		"item_id":  bid.ItemID,
		"buyer_id": bid.BuyerID,
		"value":    bid.Value,
	})
}

// GetItemsByBuyerHandler handles GET /buyers/:buyer_id/items
func (h *AuctionHandler) GetItemsByBuyerHandler(c *gin.Context) {
	buyerID := c.Param("buyer_id")
	items, err := h.service.GetItemsByBuyer(buyerID)
	if err != nil && !errors.Is(err, auctionerrors.ErrBuyerNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemsByBuyerHandler: error retrieving items", map[string]any{"buyer_id": buyerID, "error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
	helpers.LogSuccess("GetItemsByBuyerHandler", "items retrieved successfully", map[string]any{
		"buyer_id":    buyerID,
		"items_count": len(items),
	})
}
