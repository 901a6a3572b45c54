package core

import (
	"fliprelay/internal/metrics"
	"fliprelay/internal/repository"
	"time"
)

const (
	StatusConfirmed = metrics.StatusConfirmed
	StatusFailed    = metrics.StatusFailed
)

type RelayStatus struct {
	Account    string `json:"account"`
	Contract   string `json:"contract"`
	BalanceWei string `json:"balance_wei"`
	Received   uint64 `json:"received"`
	Confirmed  uint64 `json:"confirmed"`
	Failed     uint64 `json:"failed"`
	InFlight   int64  `json:"in_flight"`
}

// FulfillmentRecord is one journaled handler run.
type FulfillmentRecord struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	Player        string    `json:"player"`
	ChoseHeads    bool      `json:"chose_heads"`
	RequestTxHash string    `json:"request_tx_hash"`
	RandomValue   string    `json:"random_value,omitempty"`
	TxHash        string    `json:"tx_hash,omitempty"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	BlockNumber   uint64    `json:"block_number,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
}

func toRecord(f repository.Fulfillment) FulfillmentRecord {
	return FulfillmentRecord{
		ID:            f.ID,
		RequestID:     f.RequestID,
		Player:        f.Player,
		ChoseHeads:    f.ChoseHeads,
		RequestTxHash: f.RequestTxHash,
		RandomValue:   f.RandomValue,
		TxHash:        f.TxHash,
		Status:        f.Status,
		Reason:        f.Reason,
		BlockNumber:   f.BlockNumber,
		StartedAt:     f.StartedAt,
		CompletedAt:   f.CompletedAt,
	}
}
