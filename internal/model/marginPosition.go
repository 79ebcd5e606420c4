// Package model margin position model
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionStatus margin position lifecycle status
type PositionStatus string

// Margin position statuses, the only transition is open -> closed
const (
	PositionOpen   PositionStatus = "OPEN"
	PositionClosed PositionStatus = "CLOSED"
)

// MarginPosition model
type MarginPosition struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	BorrowedAmount decimal.Decimal `json:"borrowedAmount"`
	Multiplier     int32           `json:"multiplier"`
	TransactionID  string          `json:"transactionId"`
	Status         PositionStatus  `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
}

// IsOpen reports whether the position is still open
func (p *MarginPosition) IsOpen() bool {
	return p.Status == PositionOpen
}
