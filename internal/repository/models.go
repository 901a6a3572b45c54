package repository

import "time"

type Fulfillment struct {
	ID            string    `gorm:"primaryKey;size:36"`
	RequestID     string    `gorm:"size:78;not null;index"` // uint256 in decimal
	Player        string    `gorm:"size:42;not null"`       // 0x + 40 hex chars
	ChoseHeads    bool      `gorm:"not null"`
	RequestTxHash string    `gorm:"size:66"` // transaction that emitted the event
	RandomValue   string    `gorm:"size:78"`
	TxHash        string    `gorm:"size:66"` // fulfillment transaction, empty if never submitted
	Status        string    `gorm:"size:16;not null;index"`
	Reason        string    `gorm:"type:text"`
	BlockNumber   uint64    `gorm:"not null;default:0"`
	StartedAt     time.Time `gorm:"not null"`
	CompletedAt   time.Time `gorm:"not null"`
}
