package order

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/order-discounts/internal/domain/discount"
)

// Order prices a single order total with an attached discount strategy.
// The strategy may be swapped at any time. An Order is not safe for
// concurrent mutation.
type Order struct {
	total    decimal.Decimal
	strategy discount.Strategy
}

// New creates an Order. A nil strategy means no discount. The total is
// stored as given.
func New(total decimal.Decimal, strategy discount.Strategy) *Order {
	o := &Order{total: total}
	o.SetDiscountStrategy(strategy)
	return o
}

// SetDiscountStrategy replaces the attached strategy. It takes effect on the
// next price calculation. A nil strategy resets the order to no discount.
func (o *Order) SetDiscountStrategy(strategy discount.Strategy) {
	if strategy == nil {
		strategy = discount.None{}
	}
	o.strategy = strategy
}

// Total returns the pre-discount order total.
func (o *Order) Total() decimal.Decimal { return o.total }

// Strategy returns the attached strategy.
func (o *Order) Strategy() discount.Strategy { return o.strategy }

// Discount returns the raw discount reported by the attached strategy. It
// may exceed the total.
func (o *Order) Discount() decimal.Decimal {
	return o.strategy.CalculateDiscount(o.total)
}

// CalculateFinalPrice returns total - discount, floored at zero.
func (o *Order) CalculateFinalPrice() decimal.Decimal {
	price := o.total.Sub(o.Discount())
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
