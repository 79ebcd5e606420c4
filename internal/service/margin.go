// Package service margin positions
package service

import (
	"context"
	"fmt"
	"time"

	"Margin-Position-Service/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PositionsRepository margin positions repository
//
//go:generate mockery --name=PositionsRepository --case=underscore --output=./mocks
type PositionsRepository interface {
	CreatePosition(ctx context.Context, position *model.MarginPosition) (*model.MarginPosition, error)
	GetPositionByID(ctx context.Context, id uuid.UUID) (*model.MarginPosition, error)
	UpdatePosition(ctx context.Context, position *model.MarginPosition) error
	GetUserPositions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.MarginPosition, error)
	HasOpenPosition(ctx context.Context, userID uuid.UUID) (bool, error)
}

// PositionsCache cache for margin position point lookups
//
//go:generate mockery --name=PositionsCache --case=underscore --output=./mocks
type PositionsCache interface {
	GetPosition(ctx context.Context, id uuid.UUID) (*model.MarginPosition, error)
	SetPosition(ctx context.Context, position *model.MarginPosition) error
	DeletePosition(ctx context.Context, id uuid.UUID) error
}

// Transactor runs service logic within one storage transaction
//
//go:generate mockery --name=Transactor --case=underscore --output=./mocks
type Transactor interface {
	WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

// Margin margin positions service
type Margin struct {
	positionsRepository PositionsRepository
	positionsCache      PositionsCache
	transactor          Transactor
}

// NewMargin constructor
func NewMargin(pr PositionsRepository, pc PositionsCache, tr Transactor) *Margin {
	return &Margin{positionsRepository: pr, positionsCache: pc, transactor: tr}
}

// OpenMarginPosition create margin position with OPEN status and persist it once,
// returned entity carries the id assigned by storage
func (m *Margin) OpenMarginPosition(ctx context.Context, userID uuid.UUID, borrowedAmount decimal.Decimal,
	multiplier int32, transactionID string,
) (*model.MarginPosition, error) {
	if borrowedAmount.IsNegative() {
		return nil, &model.ValidationError{Field: "borrowedAmount", Reason: "must be non-negative"}
	}
	if multiplier < 1 {
		return nil, &model.ValidationError{Field: "multiplier", Reason: "must be greater or equal 1"}
	}
	if transactionID == "" {
		return nil, &model.ValidationError{Field: "transactionId", Reason: "must not be empty"}
	}

	position := &model.MarginPosition{
		UserID:         userID,
		BorrowedAmount: borrowedAmount,
		Multiplier:     multiplier,
		TransactionID:  transactionID,
		Status:         model.PositionOpen,
	}
	position, err := m.positionsRepository.CreatePosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("margin - OpenMarginPosition - CreatePosition: %w", err)
	}

	if err = m.positionsCache.SetPosition(ctx, position); err != nil {
		logrus.Warnf("margin - OpenMarginPosition - SetPosition: %v", err)
	}

	return position, nil
}

// CloseMarginPosition move margin position to CLOSED status, nil without error
// when no such position exists. Closing an already closed position keeps it
// CLOSED and still issues the write with the unchanged entity.
func (m *Margin) CloseMarginPosition(ctx context.Context, positionID uuid.UUID) (*model.MarginPosition, error) {
	var position *model.MarginPosition
	err := m.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		position, txErr = m.positionsRepository.GetPositionByID(txCtx, positionID)
		if txErr != nil {
			return fmt.Errorf("margin - CloseMarginPosition - GetPositionByID: %w", txErr)
		}
		if position == nil {
			return nil
		}

		if position.Status == model.PositionOpen {
			position.Status = model.PositionClosed
			closed := time.Now()
			position.ClosedAt = &closed
		}
		if txErr = m.positionsRepository.UpdatePosition(txCtx, position); txErr != nil {
			return fmt.Errorf("margin - CloseMarginPosition - UpdatePosition: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, nil
	}

	if cacheErr := m.positionsCache.DeletePosition(ctx, positionID); cacheErr != nil {
		logrus.Warnf("margin - CloseMarginPosition - DeletePosition: %v", cacheErr)
	}

	return position, nil
}

// GetPositionByID get margin position by id, nil without error when no such
// position exists, cache first then storage
func (m *Margin) GetPositionByID(ctx context.Context, positionID uuid.UUID) (*model.MarginPosition, error) {
	position, err := m.positionsCache.GetPosition(ctx, positionID)
	if err != nil {
		logrus.Warnf("margin - GetPositionByID - GetPosition: %v", err)
	}
	if position != nil {
		return position, nil
	}

	position, err = m.positionsRepository.GetPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("margin - GetPositionByID - GetPositionByID: %w", err)
	}
	if position == nil {
		return nil, nil
	}

	if cacheErr := m.positionsCache.SetPosition(ctx, position); cacheErr != nil {
		logrus.Warnf("margin - GetPositionByID - SetPosition: %v", cacheErr)
	}

	return position, nil
}

// GetUserPositions get page of user margin positions, newest first
func (m *Margin) GetUserPositions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.MarginPosition, error) {
	positions, err := m.positionsRepository.GetUserPositions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("margin - GetUserPositions - GetUserPositions: %w", err)
	}

	return positions, nil
}

// HasOpenPosition reports whether user has at least one open margin position
func (m *Margin) HasOpenPosition(ctx context.Context, userID uuid.UUID) (bool, error) {
	hasOpen, err := m.positionsRepository.HasOpenPosition(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("margin - HasOpenPosition - HasOpenPosition: %w", err)
	}

	return hasOpen, nil
}
