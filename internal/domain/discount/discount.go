// Package discount implements the interchangeable discount strategies that
// can be attached to an order.
package discount

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Kind enumerates the supported discount strategies.
type Kind string

const (
	// KindNone never discounts.
	KindNone Kind = "none"
	// KindFixed discounts a constant amount regardless of the order total.
	KindFixed Kind = "fixed"
	// KindPercentage discounts a percentage of the order total.
	KindPercentage Kind = "percentage"
	// KindBonusPoints redeems loyalty points 1:1, capped at the order total.
	KindBonusPoints Kind = "bonus_points"
)

var (
	// ErrInvalidArgument is returned when a strategy is constructed with
	// parameters outside its valid range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownKind is returned by Parse for an unsupported strategy kind.
	ErrUnknownKind = errors.New("unknown discount kind")
)

// Strategy calculates the discount for an order total.
//
// Implementations are pure: the result depends only on the order total and
// the parameters fixed at construction. The returned amount is the raw
// discount and may exceed the order total; callers clamp the final price.
type Strategy interface {
	CalculateDiscount(orderTotal decimal.Decimal) decimal.Decimal
	Kind() Kind
}
