package fondo

import (
	"errors"
	"fmt"
)

// Contribution is one purchase event: an amount of money invested into a fund
// at a given price per unit.
type Contribution struct {
	Fund     string `json:"fund"`
	Date     Date   `json:"date"`
	Invested Money  `json:"invested"`
	Price    Money  `json:"price"` // purchase price per unit
}

// Validation sentinels. A row failing validation is excluded from every
// computation and counted, never silently divided or coerced.
var (
	ErrNonPositivePrice    = errors.New("purchase price must be strictly positive")
	ErrNonPositiveInvested = errors.New("amount invested must be strictly positive")
	ErrMissingFund         = errors.New("fund name is empty")
	ErrMissingDate         = errors.New("date is missing")
)

// Validate checks the contribution invariants. The price check matters most:
// the price is used as a divisor by the valuation engine.
func (c Contribution) Validate() error {
	if c.Fund == "" {
		return ErrMissingFund
	}
	if c.Date.IsZero() {
		return ErrMissingDate
	}
	if !c.Invested.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrNonPositiveInvested, c.Invested)
	}
	if !c.Price.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrNonPositivePrice, c.Price)
	}
	return nil
}

// Units returns the number of fund units implied by this contribution.
// The contribution must be valid (Price > 0).
func (c Contribution) Units() Quantity {
	return c.Invested.DivPrice(c.Price)
}

func (c Contribution) String() string {
	return fmt.Sprintf("%s %s invested %s at %s", c.Date, c.Fund, c.Invested, c.Price)
}
