package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrBuyerNotFound = errors.New("buyer not found")
	ErrNoBids        = errors.New("no bids found for item")
	ErrBuyerNoBids   = errors.New("buyer has not placed any bids")
)

// business logic errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBidTooLow    = errors.New("bid value too low")
)
