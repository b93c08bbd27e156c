package points

import (
	"context"
	"errors"
	"time"

	"github.com/socialfi-labs/points-engine/internal/domain/entity"
	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
	"github.com/socialfi-labs/points-engine/internal/domain/port/persistence"
	"github.com/socialfi-labs/points-engine/internal/domain/port/usecase"
)

// DefaultWriteRetries bounds how many times a conflicting ledger write is
// retried before giving up with ErrConcurrentUpdate
const DefaultWriteRetries = 3

// retryBaseDelay is the backoff applied between conflicting write attempts
const retryBaseDelay = 25 * time.Millisecond

// LedgerWriter is the only write path into the ledger and balance pair. Each
// call appends one ledger entry and applies its signed delta to the user's
// balance aggregate inside a single database transaction, so the two tables
// never diverge under concurrent writers.
type LedgerWriter struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxRetries   int
}

// NewLedgerWriter creates a ledger writer backed by the given unit of work
func NewLedgerWriter(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerWriter {
	return &LedgerWriter{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		maxRetries:   DefaultWriteRetries,
	}
}

// WithMaxRetries overrides the conflict retry budget
func (w *LedgerWriter) WithMaxRetries(retries int) *LedgerWriter {
	if retries > 0 {
		w.maxRetries = retries
	}
	return w
}

// CreatePoint appends a ledger entry and updates the balance aggregate
// atomically. Conflicting writes to the same user's balance are retried as
// whole units; any other failure aborts with nothing committed.
func (w *LedgerWriter) CreatePoint(ctx context.Context, req usecase.CreatePointRequest) (*usecase.PointResult, error) {
	point, err := entity.NewPointTransaction(
		req.UserID,
		req.Amount,
		req.Action,
		req.Source,
		req.Metadata,
		w.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	var result *usecase.PointResult
	for attempt := 0; attempt < w.maxRetries; attempt++ {
		if attempt > 0 {
			w.logger.Warn("Retrying conflicting ledger write", map[string]any{
				"user_id": req.UserID,
				"source":  req.Source,
				"attempt": attempt + 1,
			})
			w.timeProvider.Sleep(retryBaseDelay * time.Duration(1<<uint(attempt-1)))
		}

		result, err = w.writeOnce(ctx, point)
		if err == nil {
			w.logger.Debug("Ledger entry committed", map[string]any{
				"point_id": point.ID,
				"user_id":  point.UserID,
				"amount":   point.Amount.String(),
				"action":   string(point.Action),
				"source":   point.Source,
				"balance":  result.UserPoint.Balance.String(),
				"level":    result.UserPoint.Level,
			})
			return result, nil
		}

		if !errs.IsConcurrentUpdateError(err) {
			return nil, errs.NewLedgerWriteError(
				req.UserID, req.Amount.String(), string(point.Action), req.Source, err)
		}
	}

	return nil, errs.NewConcurrentUpdateError(req.UserID, w.maxRetries)
}

// writeOnce runs one attempt of the insert-then-upsert unit
func (w *LedgerWriter) writeOnce(ctx context.Context, point *entity.PointTransaction) (*usecase.PointResult, error) {
	txCtx, err := w.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	pointRepo := w.uow.GetPointRepository(txCtx)
	userPointRepo := w.uow.GetUserPointRepository(txCtx)

	if err := pointRepo.Create(txCtx, point); err != nil {
		w.rollback(txCtx, point.UserID)
		return nil, err
	}

	delta := point.SignedAmount()

	userPoint, err := userPointRepo.GetByUserID(txCtx, point.UserID)
	switch {
	case err == nil:
		userPoint.ApplyDelta(delta, w.timeProvider)
		if err := userPointRepo.Update(txCtx, userPoint); err != nil {
			w.rollback(txCtx, point.UserID)
			return nil, err
		}
	case errors.Is(err, errs.ErrUserNotFound):
		// First transaction for this user: the aggregate row is created lazily
		userPoint, err = entity.NewUserPoint(point.UserID, delta, w.timeProvider)
		if err != nil {
			w.rollback(txCtx, point.UserID)
			return nil, err
		}
		if err := userPointRepo.Create(txCtx, userPoint); err != nil {
			w.rollback(txCtx, point.UserID)
			// A concurrent first write for this user already inserted the
			// row; the retry reads it and takes the update path
			if errors.Is(err, errs.ErrConstraintViolation) {
				return nil, errs.ErrConcurrentUpdate
			}
			return nil, err
		}
	default:
		w.rollback(txCtx, point.UserID)
		return nil, err
	}

	if err := w.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return &usecase.PointResult{Point: point, UserPoint: userPoint}, nil
}

func (w *LedgerWriter) rollback(ctx context.Context, userID string) {
	if err := w.uow.Rollback(ctx); err != nil {
		w.logger.Error("Failed to roll back ledger write", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
