package ledger

import "errors"

var (
	// ErrInsufficientFunds rejects a buy whose cost exceeds available cash.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHoldings rejects a sell larger than the current holding.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	// ErrInvalidAction rejects actions other than BUY and SELL.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidInstrument rejects instruments outside the tracked universe.
	ErrInvalidInstrument = errors.New("instrument not tracked")
	// ErrInvalidQuantity rejects non-positive trade quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPrice rejects non-positive unit prices.
	ErrInvalidPrice = errors.New("price must be positive")
)
