package pricing_test

import (
	"testing"

	"innkeep/config"
	"innkeep/internal/domains/booking/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardCalculator() pricing.Calculator {
	return pricing.New(
		decimal.RequireFromString("0.18"),
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("50.00"),
	)
}

func TestCalculator_Quote(t *testing.T) {
	calc := standardCalculator()

	tests := []struct {
		name          string
		durationValue int64
		rate          string
		advance       string
		wantBase      string
		wantTax       string
		wantTotal     string
	}{
		{
			name:          "single room three days with advance",
			durationValue: 3,
			rate:          "1000.00",
			advance:       "200.00",
			wantBase:      "3000.00",
			wantTax:       "540.00",
			wantTotal:     "3490.00",
		},
		{
			name:          "ballroom four hours no advance",
			durationValue: 4,
			rate:          "500.00",
			advance:       "0",
			wantBase:      "2000.00",
			wantTax:       "360.00",
			wantTotal:     "2510.00",
		},
		{
			name:          "fractional rate keeps exact decimal arithmetic",
			durationValue: 3,
			rate:          "1999.99",
			advance:       "0",
			wantBase:      "5999.97",
			wantTax:       "1079.99",
			wantTotal:     "7229.96",
		},
		{
			name:          "advance above charges yields a negative total",
			durationValue: 1,
			rate:          "100.00",
			advance:       "1000.00",
			wantBase:      "100.00",
			wantTax:       "18.00",
			wantTotal:     "-732.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := decimal.RequireFromString(tt.rate)
			advance := decimal.RequireFromString(tt.advance)

			quote := calc.Quote(tt.durationValue, rate, advance)

			assert.True(t, quote.Base.Equal(decimal.RequireFromString(tt.wantBase)), "base = %s", quote.Base)
			assert.True(t, quote.Tax.Equal(decimal.RequireFromString(tt.wantTax)), "tax = %s", quote.Tax)
			assert.True(t, quote.Housekeeping.Equal(decimal.RequireFromString("100.00")))
			assert.True(t, quote.Misc.Equal(decimal.RequireFromString("50.00")))
			assert.True(t, quote.Total.Equal(decimal.RequireFromString(tt.wantTotal)), "total = %s", quote.Total)
		})
	}
}

func TestCalculator_QuoteTotalIdentity(t *testing.T) {
	calc := standardCalculator()

	quote := calc.Quote(7, decimal.RequireFromString("123.45"), decimal.RequireFromString("99.99"))

	recomputed := quote.Base.
		Add(quote.Tax).
		Add(quote.Housekeeping).
		Add(quote.Misc).
		Sub(quote.Advance)

	require.True(t, quote.Total.Equal(recomputed), "total %s != breakdown sum %s", quote.Total, recomputed)
}

func TestCalculator_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.TaxRate = decimal.RequireFromString("0.18")
	cfg.Booking.HousekeepingFee = decimal.RequireFromString("100.00")
	cfg.Booking.MiscFee = decimal.RequireFromString("50.00")

	calc := pricing.FromConfig(cfg)
	quote := calc.Quote(3, decimal.RequireFromString("1000.00"), decimal.RequireFromString("200.00"))

	assert.True(t, quote.Total.Equal(decimal.RequireFromString("3490.00")), "total = %s", quote.Total)
}
