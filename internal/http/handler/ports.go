package handler

import (
	"context"
	"fliprelay/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RelayService . RelayService
type RelayService interface {
	Status(ctx context.Context) (core.RelayStatus, error)
	Fulfillments(ctx context.Context, requestID string) ([]core.FulfillmentRecord, error)
}
