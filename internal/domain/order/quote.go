package order

import (
	"fmt"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is a priced snapshot of an Order.
type Quote struct {
	ID         string
	Strategy   string
	Total      decimal.Decimal
	Discount   decimal.Decimal
	FinalPrice decimal.Decimal
	CreatedAt  time.Time
}

// NewQuote prices o with its current strategy. Discount is the amount
// actually applied, so Total - Discount always equals FinalPrice.
func NewQuote(o *Order, now time.Time) Quote {
	final := o.CalculateFinalPrice()
	return Quote{
		ID:         uuid.New().String(),
		Strategy:   fmt.Sprint(o.Strategy()),
		Total:      o.Total(),
		Discount:   o.Total().Sub(final),
		FinalPrice: final,
		CreatedAt:  now,
	}
}

// Encode encodes Quote as a JSON object. Money is written as strings
// rounded to two decimal places.
func (q Quote) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(q.ID)
	e.FieldStart("strategy")
	e.Str(q.Strategy)
	e.FieldStart("total")
	e.Str(q.Total.StringFixed(2))
	e.FieldStart("discount")
	e.Str(q.Discount.StringFixed(2))
	e.FieldStart("final_price")
	e.Str(q.FinalPrice.StringFixed(2))
	e.FieldStart("created_at")
	e.Str(q.CreatedAt.UTC().Format(time.RFC3339))
	e.ObjEnd()
}
