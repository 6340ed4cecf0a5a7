package server

import (
	auction "auction-service/internal/auctionService"
	handler "auction-service/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	items := router.Group("/items")
	{
		items.POST("", auctionHandler.RegisterItemHandler)
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/bids", auctionHandler.GetBidsByItemHandler)
		items.GET("/:item_id/winning", auctionHandler.GetWinningBidHandler)
	}

	buyers := router.Group("/buyers")
	{
		buyers.POST("", auctionHandler.RegisterBuyerHandler)
		buyers.GET("/:buyer_id/items", auctionHandler.GetItemsByBuyerHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.RecordBidHandler)
	}

	return router
}
