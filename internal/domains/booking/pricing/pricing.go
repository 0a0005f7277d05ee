package pricing

import (
	"innkeep/config"

	"github.com/shopspring/decimal"
)

// Quote is the charge breakdown for one reservation. Total may be negative
// when the advance exceeds the other charges; that is a refund due, not an
// error.
type Quote struct {
	Base         decimal.Decimal
	Tax          decimal.Decimal
	Housekeeping decimal.Decimal
	Misc         decimal.Decimal
	Advance      decimal.Decimal
	Total        decimal.Decimal
}

// Calculator computes reservation charges in fixed-point decimal arithmetic.
// The rates come from configuration so deployments can tune them.
type Calculator struct {
	taxRate         decimal.Decimal
	housekeepingFee decimal.Decimal
	miscFee         decimal.Decimal
}

func New(taxRate, housekeepingFee, miscFee decimal.Decimal) Calculator {
	return Calculator{
		taxRate:         taxRate,
		housekeepingFee: housekeepingFee,
		miscFee:         miscFee,
	}
}

func FromConfig(cfg *config.Config) Calculator {
	return New(cfg.Booking.TaxRate, cfg.Booking.HousekeepingFee, cfg.Booking.MiscFee)
}

// Quote prices a stay of durationValue units at the given per-unit rate.
// Tax is rounded to two decimal places so the stored amounts match the
// currency scale of the schema.
func (c Calculator) Quote(durationValue int64, rate, advance decimal.Decimal) Quote {
	base := rate.Mul(decimal.NewFromInt(durationValue))
	tax := base.Mul(c.taxRate).Round(2)
	total := base.Add(tax).Add(c.housekeepingFee).Add(c.miscFee).Sub(advance)

	return Quote{
		Base:         base,
		Tax:          tax,
		Housekeeping: c.housekeepingFee,
		Misc:         c.miscFee,
		Advance:      advance,
		Total:        total,
	}
}
