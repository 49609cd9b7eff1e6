package discount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNone(t *testing.T) {
	for _, total := range []string{"0", "0.01", "50", "1000", "123456.78"} {
		got := None{}.CalculateDiscount(d(total))
		assert.True(t, got.IsZero(), "total %s: expected zero discount, got %s", total, got)
	}
	assert.Equal(t, KindNone, None{}.Kind())
}

func TestFixed(t *testing.T) {
	f, err := NewFixed(d("150.0"))
	require.NoError(t, err)

	for _, total := range []string{"0", "50", "150", "1000"} {
		got := f.CalculateDiscount(d(total))
		assert.True(t, d("150").Equal(got), "total %s: expected 150, got %s", total, got)
	}
	assert.Equal(t, KindFixed, f.Kind())
	assert.True(t, d("150").Equal(f.Amount()))
}

func TestNewFixed(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "positive", amount: d("9.99")},
		{name: "larger than any total", amount: d("1000000")},
		{name: "negative", amount: d("-0.01"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFixed(tt.amount)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.amount.Equal(f.Amount()))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		percent string
		total   string
		want    string
	}{
		{name: "10% of 1000", percent: "10", total: "1000", want: "100"},
		{name: "10% of 500", percent: "10", total: "500", want: "50"},
		{name: "20% of 1000", percent: "20", total: "1000", want: "200"},
		{name: "0% discounts nothing", percent: "0", total: "1000", want: "0"},
		{name: "100% discounts everything", percent: "100", total: "42.50", want: "42.50"},
		{name: "fractional percent is exact", percent: "33.33", total: "10.01", want: "3.336333"},
		{name: "zero total", percent: "50", total: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPercentage(d(tt.percent))
			require.NoError(t, err)

			got := p.CalculateDiscount(d(tt.total))
			assert.True(t, d(tt.want).Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestNewPercentage_OutOfRange(t *testing.T) {
	for _, percent := range []string{"110", "-10", "100.01", "-0.0001"} {
		t.Run(percent, func(t *testing.T) {
			p, err := NewPercentage(d(percent))
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, p)
		})
	}
}

func TestBonusPoints(t *testing.T) {
	b, err := NewBonusPoints(200)
	require.NoError(t, err)

	tests := []struct {
		total string
		want  string
	}{
		{total: "1000", want: "200"},
		{total: "200", want: "200"},
		{total: "150", want: "150"},
		{total: "0", want: "0"},
		{total: "199.99", want: "199.99"},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			got := b.CalculateDiscount(d(tt.total))
			assert.True(t, d(tt.want).Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
	assert.Equal(t, KindBonusPoints, b.Kind())
	assert.Equal(t, int64(200), b.Points())
}

func TestNewBonusPoints(t *testing.T) {
	b, err := NewBonusPoints(-50)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, b)

	b, err = NewBonusPoints(0)
	require.NoError(t, err)
	assert.True(t, b.CalculateDiscount(d("10")).IsZero())
}

func TestStrategiesNeverDependOnCallHistory(t *testing.T) {
	p, err := NewPercentage(d("15"))
	require.NoError(t, err)
	b, err := NewBonusPoints(30)
	require.NoError(t, err)

	for _, s := range []Strategy{None{}, p, b} {
		first := s.CalculateDiscount(d("100"))
		_ = s.CalculateDiscount(d("7"))
		second := s.CalculateDiscount(d("100"))
		assert.True(t, first.Equal(second), "%v: %s != %s", s, first, second)
	}
}
