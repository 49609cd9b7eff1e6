package discount

import (
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// None is the strategy used when an order has no discount attached.
type None struct{}

var _ Strategy = None{}

// CalculateDiscount always returns zero.
func (None) CalculateDiscount(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// Kind implements Strategy.
func (None) Kind() Kind { return KindNone }

func (None) String() string { return string(KindNone) }

// Fixed discounts a constant amount.
type Fixed struct {
	amount decimal.Decimal
}

var _ Strategy = (*Fixed)(nil)

// NewFixed returns a Fixed strategy. The amount must not be negative, but
// it may exceed the totals it is later applied to.
func NewFixed(amount decimal.Decimal) (*Fixed, error) {
	if amount.IsNegative() {
		return nil, errors.Wrapf(ErrInvalidArgument, "discount amount %s is negative", amount)
	}
	return &Fixed{amount: amount}, nil
}

// Amount returns the configured discount amount.
func (f *Fixed) Amount() decimal.Decimal { return f.amount }

// CalculateDiscount returns the configured amount, ignoring the order total.
func (f *Fixed) CalculateDiscount(decimal.Decimal) decimal.Decimal {
	return f.amount
}

// Kind implements Strategy.
func (f *Fixed) Kind() Kind { return KindFixed }

func (f *Fixed) String() string { return string(KindFixed) + ":" + f.amount.String() }

// Percentage discounts a share of the order total.
type Percentage struct {
	percent decimal.Decimal
}

var _ Strategy = (*Percentage)(nil)

// NewPercentage returns a Percentage strategy for a percent in [0, 100].
func NewPercentage(percent decimal.Decimal) (*Percentage, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return nil, errors.Wrapf(ErrInvalidArgument, "discount percent %s must be between 0 and 100", percent)
	}
	return &Percentage{percent: percent}, nil
}

// Percent returns the configured percentage.
func (p *Percentage) Percent() decimal.Decimal { return p.percent }

// CalculateDiscount returns orderTotal * percent / 100.
func (p *Percentage) CalculateDiscount(orderTotal decimal.Decimal) decimal.Decimal {
	return orderTotal.Mul(p.percent).Div(hundred)
}

// Kind implements Strategy.
func (p *Percentage) Kind() Kind { return KindPercentage }

func (p *Percentage) String() string { return string(KindPercentage) + ":" + p.percent.String() }

// BonusPoints redeems loyalty points against the order total, one point per
// currency unit.
type BonusPoints struct {
	points int64
}

var _ Strategy = (*BonusPoints)(nil)

// NewBonusPoints returns a BonusPoints strategy for a non-negative balance.
func NewBonusPoints(points int64) (*BonusPoints, error) {
	if points < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "bonus points %d must not be negative", points)
	}
	return &BonusPoints{points: points}, nil
}

// Points returns the redeemable point balance.
func (b *BonusPoints) Points() int64 { return b.points }

// CalculateDiscount returns min(orderTotal, points): points never redeem
// more than the purchase price.
func (b *BonusPoints) CalculateDiscount(orderTotal decimal.Decimal) decimal.Decimal {
	return decimal.Min(orderTotal, decimal.NewFromInt(b.points))
}

// Kind implements Strategy.
func (b *BonusPoints) Kind() Kind { return KindBonusPoints }

func (b *BonusPoints) String() string {
	return string(KindBonusPoints) + ":" + strconv.FormatInt(b.points, 10)
}
