package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/socialfi-labs/points-engine/internal/domain/error"
	coreport "github.com/socialfi-labs/points-engine/internal/domain/port/core"
)

// PointAction describes the direction of a ledger entry
type PointAction string

// Ledger actions. The amount itself is always non-negative; the action carries the sign.
const (
	ActionIncrement PointAction = "increment"
	ActionDecrement PointAction = "decrement"
)

// PointTransaction is a single immutable entry in the points ledger.
// Entries are appended once and never updated or deleted.
type PointTransaction struct {
	ID        string          // Unique identifier, generated at creation
	UserID    string          // Owner of the transaction
	Amount    decimal.Decimal // Non-negative magnitude; sign is carried by Action
	Action    PointAction     // increment or decrement
	Source    string          // Activity tag that produced the entry (e.g. POST_LIKE)
	Metadata  map[string]any  // Opaque context payload, stored and returned verbatim
	CreatedAt time.Time       // Insert timestamp; all ordering and windowing key off this
}

// NewPointTransaction creates a ledger entry with basic validation
func NewPointTransaction(
	userID string,
	amount decimal.Decimal,
	action PointAction,
	source string,
	metadata map[string]any,
	timeProvider coreport.TimeProvider,
) (*PointTransaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount.IsNegative() {
		return nil, errs.ErrNegativeAmount
	}

	// An empty action defaults to increment, matching the write contract
	if action == "" {
		action = ActionIncrement
	}
	if !isValidAction(action) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidAction, action)
	}

	if metadata == nil {
		metadata = map[string]any{}
	}

	return &PointTransaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Action:    action,
		Source:    source,
		Metadata:  metadata,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// SignedAmount returns the balance delta this entry contributes:
// +Amount for increments, -Amount for decrements.
func (p *PointTransaction) SignedAmount() decimal.Decimal {
	if p.Action == ActionDecrement {
		return p.Amount.Neg()
	}
	return p.Amount
}

// IsCredit returns true if this entry increases the user's balance
func (p *PointTransaction) IsCredit() bool {
	return p.Action == ActionIncrement
}

func isValidAction(action PointAction) bool {
	return action == ActionIncrement || action == ActionDecrement
}

// ParseAmount normalizes an amount supplied as a decimal string or plain number
// into an exact decimal. Floating point arithmetic is never applied to points.
func ParseAmount(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, v)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", errs.ErrInvalidAmount, value)
	}
}
