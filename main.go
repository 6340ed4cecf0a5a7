package main

import (
	"fmt"
	"os"
	"time"

	auction "auction-service/internal/auctionService"
	"auction-service/internal/repository"
	"auction-service/internal/server"

	"github.com/joho/godotenv"
)

func main() {

	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	repo := repository.NewMemoryRepo()

	auctionSvc := auction.NewAuctionService(repo, getDefaultAuctionDuration())

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getDefaultAuctionDuration returns how long auctions run when no deadline
// is supplied at registration, from AUCTION_DEFAULT_DURATION (Go duration
// string, e.g. "90m") or the service default for missing/bad values.
func getDefaultAuctionDuration() time.Duration {
	if v := os.Getenv("AUCTION_DEFAULT_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		fmt.Fprintf(os.Stderr, "Ignoring invalid AUCTION_DEFAULT_DURATION %q\n", v)
	}
	return auction.DefaultAuctionDuration
}
