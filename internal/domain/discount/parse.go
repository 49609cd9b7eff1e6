package discount

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Parse builds a Strategy from its textual form "kind[:value]", e.g.
// "none", "fixed:150", "percentage:20" or "bonus_points:200". The value is
// required for every kind except none. Parse accepts the output of each
// strategy's String method.
func Parse(s string) (Strategy, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(s), ":")
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	value = strings.TrimSpace(value)

	if kind == "bonus" {
		kind = KindBonusPoints
	}
	if kind != KindNone && kind != KindFixed && kind != KindPercentage && kind != KindBonusPoints {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", name)
	}

	if kind == KindNone {
		if hasValue {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s takes no value", kind)
		}
		return None{}, nil
	}
	if value == "" {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s requires a value", kind)
	}

	switch kind {
	case KindFixed:
		amount, err := parseDecimal(kind, value)
		if err != nil {
			return nil, err
		}
		f, err := NewFixed(amount)
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindPercentage:
		percent, err := parseDecimal(kind, value)
		if err != nil {
			return nil, err
		}
		p, err := NewPercentage(percent)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		points, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "parse %s value %q", kind, value)
		}
		b, err := NewBonusPoints(points)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func parseDecimal(kind Kind, value string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidArgument, "parse %s value %q", kind, value)
	}
	return v, nil
}
