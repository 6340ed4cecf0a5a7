// Package evaluator holds the auction domain rules as pure functions
// over the data model: current-price derivation, bid admissibility and
// remaining auction time. It performs no I/O and keeps no state; the
// store is responsible for calling Admissible inside its write-side
// critical section so that evaluate-and-append stays atomic per item.
package evaluator

import (
	"time"

	model "auction-service/internal/models"

	"github.com/shopspring/decimal"
)

// CurrentPrice returns the value a new bid must strictly exceed: the
// value of the most recently accepted bid, or the item's starting price
// when no bids exist. "Most recent" is insertion order, not numeric
// order — every accepted bid beat the price current at its acceptance,
// so the last bid is also the highest. The history is trusted, never
// sorted; callers holding out-of-order data get the stale last value.
func CurrentPrice(item model.Item, bids []model.Bid) float64 {
	if len(bids) == 0 {
		return item.StartingPrice
	}
	return bids[len(bids)-1].Value
}

// HighestPrice is the strict variant of CurrentPrice: it recomputes the
// true maximum over the recorded history instead of trusting insertion
// order. On a history produced through Admissible both agree.
func HighestPrice(item model.Item, bids []model.Bid) float64 {
	highest := item.StartingPrice
	for _, b := range bids {
		if b.Value > highest {
			highest = b.Value
		}
	}
	return highest
}

// Admissible reports whether a proposed bid value strictly exceeds the
// current price. Amounts are compared as exact decimals; a bid equal to
// the current price always loses.
func Admissible(proposed, current float64) bool {
	return decimal.NewFromFloat(proposed).GreaterThan(decimal.NewFromFloat(current))
}

// TimeRemaining returns how long the item's auction has left at the
// given instant. The result is not clamped: it goes negative once the
// deadline has passed. Expiry is reported, never enforced.
func TimeRemaining(item model.Item, now time.Time) time.Duration {
	return item.Deadline.Sub(now)
}
