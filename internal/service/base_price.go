package service

import (
	"context"
	"sync/atomic"
)

// BasePrice is an in-process domain.BasePriceStore. Reads and writes are
// atomic; concurrent writers race with last-write-wins.
type BasePrice struct {
	price atomic.Int64
}

func NewBasePrice(initial int) *BasePrice {
	b := &BasePrice{}
	b.price.Store(int64(initial))

	return b
}

func (b *BasePrice) Get(_ context.Context) (int, error) {
	return int(b.price.Load()), nil
}

func (b *BasePrice) Set(_ context.Context, price int) error {
	b.price.Store(int64(price))

	return nil
}
