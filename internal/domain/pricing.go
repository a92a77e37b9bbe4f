package domain

import (
	"context"
	"slices"
)

const DefaultBasePrice = 1500

type PricingComponent struct {
	ID     int
	Name   string
	Amount int
}

// ComponentSet is the set of pricing component IDs attached to a movie, room
// or screening. Components are referenced by ID only, they never point back
// at their owners.
type ComponentSet []int

// Add inserts id and reports whether the set changed.
func (s *ComponentSet) Add(id int) bool {
	if s.Contains(id) {
		return false
	}

	*s = append(*s, id)
	slices.Sort(*s)

	return true
}

func (s ComponentSet) Contains(id int) bool {
	return slices.Contains(s, id)
}

func (s ComponentSet) IDs() []int {
	return slices.Clone(s)
}

// CalculatePrice folds every component set into the base price and multiplies
// by the seat count. A component attached in several scopes is counted once
// per scope.
func CalculatePrice(basePrice, seatCount int, componentSets ...[]PricingComponent) int {
	unitPrice := basePrice

	for _, set := range componentSets {
		for _, c := range set {
			unitPrice += c.Amount
		}
	}

	return unitPrice * seatCount
}

// BasePriceStore holds the process-wide base price. Updates apply to every
// later calculation; stored booking prices are never recomputed.
type BasePriceStore interface {
	Get(ctx context.Context) (int, error)
	Set(ctx context.Context, price int) error
}

type PricingComponentRepository interface {
	Create(ctx context.Context, component *PricingComponent) error
	GetByName(ctx context.Context, name string) (*PricingComponent, error)
	GetByIDs(ctx context.Context, ids []int) ([]PricingComponent, error)
}
