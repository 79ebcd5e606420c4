// Package repository margin position
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Margin-Position-Service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MarginPosition postgres entity
type MarginPosition struct {
	runner PgxWithinTransactionRunner
}

// NewMarginPositionRepository creating new MarginPosition repository
func NewMarginPositionRepository(runner PgxWithinTransactionRunner) *MarginPosition {
	return &MarginPosition{runner: runner}
}

func persistenceError(op string, err error) error {
	return &model.PersistenceError{Op: op, Err: err}
}

// CreatePosition create margin position, id and timestamps are assigned by the database
func (r *MarginPosition) CreatePosition(ctx context.Context, position *model.MarginPosition) (*model.MarginPosition, error) {
	err := r.runner.QueryRow(ctx,
		`insert into margin_positions (user_id, borrowed_amount, multiplier, transaction_id, status)
			values ($1, $2, $3, $4, $5)
			returning id, created_at, updated_at`,
		position.UserID, position.BorrowedAmount, position.Multiplier, position.TransactionID, position.Status).
		Scan(&position.ID, &position.CreatedAt, &position.UpdatedAt)
	if err != nil {
		return nil, persistenceError("marginPosition - CreatePosition - QueryRow", err)
	}

	return position, nil
}

// GetPositionByID get margin position by id, nil without error when no such position exists
func (r *MarginPosition) GetPositionByID(ctx context.Context, id uuid.UUID) (*model.MarginPosition, error) {
	position := model.MarginPosition{}
	err := r.runner.QueryRow(ctx,
		`select id, user_id, borrowed_amount, multiplier, transaction_id, status, created_at, updated_at, closed_at
			from margin_positions
			where id = $1`, id).
		Scan(&position.ID, &position.UserID, &position.BorrowedAmount, &position.Multiplier,
			&position.TransactionID, &position.Status, &position.CreatedAt, &position.UpdatedAt, &position.ClosedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("marginPosition - GetPositionByID - QueryRow", err)
	}

	return &position, nil
}

// UpdatePosition update margin position status fields
func (r *MarginPosition) UpdatePosition(ctx context.Context, position *model.MarginPosition) error {
	var idCheck uuid.UUID
	position.UpdatedAt = time.Now()
	err := r.runner.QueryRow(ctx,
		`update margin_positions set status=$1, closed_at=$2, updated_at=$3 where id=$4 returning id`,
		position.Status, position.ClosedAt, position.UpdatedAt, position.ID).Scan(&idCheck)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return persistenceError("marginPosition - UpdatePosition - QueryRow",
				fmt.Errorf("position %s vanished during update", position.ID))
		}
		return persistenceError("marginPosition - UpdatePosition - QueryRow", err)
	}

	return nil
}

// GetUserPositions get page of user margin positions, newest first
func (r *MarginPosition) GetUserPositions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.MarginPosition, error) {
	rows, err := r.runner.Query(ctx,
		`select id, user_id, borrowed_amount, multiplier, transaction_id, status, created_at, updated_at, closed_at
			from margin_positions
			where user_id = $1
			order by created_at desc
			limit $2 offset $3`, userID, limit, offset)
	if err != nil {
		return nil, persistenceError("marginPosition - GetUserPositions - Query", err)
	}
	defer rows.Close()

	positions := make([]*model.MarginPosition, 0)
	for rows.Next() {
		position := model.MarginPosition{}
		err = rows.Scan(&position.ID, &position.UserID, &position.BorrowedAmount, &position.Multiplier,
			&position.TransactionID, &position.Status, &position.CreatedAt, &position.UpdatedAt, &position.ClosedAt)
		if err != nil {
			return nil, persistenceError("marginPosition - GetUserPositions - Scan", err)
		}
		positions = append(positions, &position)
	}
	if err = rows.Err(); err != nil {
		return nil, persistenceError("marginPosition - GetUserPositions - Rows", err)
	}

	return positions, nil
}

// HasOpenPosition reports whether user has at least one open margin position
func (r *MarginPosition) HasOpenPosition(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.runner.QueryRow(ctx,
		`select exists(select 1 from margin_positions where user_id = $1 and status = $2)`,
		userID, model.PositionOpen).Scan(&exists)
	if err != nil {
		return false, persistenceError("marginPosition - HasOpenPosition - QueryRow", err)
	}

	return exists, nil
}
