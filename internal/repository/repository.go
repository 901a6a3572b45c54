package repository

import (
	"context"
	"errors"
	"fliprelay/internal/db"
	"fmt"
	"sort"
)

var ErrFulfillmentNotFound error = errors.New("fulfillment not found")

// FulfillmentRepository is the write-mostly journal of fulfillment attempts.
type FulfillmentRepository struct {
	db Storage
}

func NewFulfillmentRepository(db Storage) *FulfillmentRepository {
	return &FulfillmentRepository{
		db: db,
	}
}

func (r *FulfillmentRepository) Migrate() error {
	err := r.db.MigrateTable(&Fulfillment{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *FulfillmentRepository) SaveFulfillment(ctx context.Context, fulfillment Fulfillment) error {
	err := r.db.Insert(ctx, &fulfillment)
	if err != nil {
		return fmt.Errorf("save fulfillment: %w", err)
	}

	return nil
}

// GetFulfillments returns every attempt recorded for requestID, oldest first.
func (r *FulfillmentRepository) GetFulfillments(ctx context.Context, requestID string) ([]Fulfillment, error) {
	var fulfillments []Fulfillment

	err := r.db.GetAllBy(ctx, "request_id", requestID, &fulfillments)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrFulfillmentNotFound
		}
		return nil, fmt.Errorf("get fulfillments: %w", err)
	}

	sort.SliceStable(fulfillments, func(i, j int) bool {
		return fulfillments[i].StartedAt.Before(fulfillments[j].StartedAt)
	})

	return fulfillments, nil
}
