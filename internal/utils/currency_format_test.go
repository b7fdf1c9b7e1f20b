package utils_test

import (
	"testing"

	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		precision int
		want      string
	}{
		{name: "two decimals", amount: "12.3456", precision: 2, want: "12.35"},
		{name: "zero decimals", amount: "12.5", precision: 0, want: "13"},
		{name: "already exact", amount: "7.1", precision: 2, want: "7.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatWithPrecision(decimal.RequireFromString(tt.amount), tt.precision)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "160.00", utils.FormatMoney(decimal.NewFromInt(160)))
	assert.Equal(t, "0.30", utils.FormatMoney(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))))
	assert.Equal(t, "2.35", utils.RoundMoney(decimal.RequireFromString("2.345")).String())
}

func TestClampAndNonNegative(t *testing.T) {
	lo, hi := decimal.Zero, decimal.NewFromInt(100)
	assert.True(t, hi.Equal(utils.Clamp(decimal.NewFromInt(120), lo, hi)))
	assert.True(t, lo.Equal(utils.Clamp(decimal.NewFromInt(-3), lo, hi)))
	assert.True(t, decimal.NewFromInt(42).Equal(utils.Clamp(decimal.NewFromInt(42), lo, hi)))
	assert.True(t, decimal.Zero.Equal(utils.NonNegative(decimal.NewFromInt(-1))))
}

func TestParseMoney(t *testing.T) {
	v, err := utils.ParseMoney("")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = utils.ParseMoney("19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", v.String())

	_, err = utils.ParseMoney("abc")
	assert.Error(t, err)
}
