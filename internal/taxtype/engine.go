package taxtype

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bucefal91/commerce/internal/obs"
	"github.com/bucefal91/commerce/internal/order"
)

// CustomLoader supplies the data-driven tax types assembled from stored
// configuration.
type CustomLoader interface {
	EnabledTypes(ctx context.Context) ([]TaxType, error)
}

// Engine applies every known tax type to an order. Built-in types are static;
// custom types are loaded per invocation so configuration changes take effect
// without restarts.
type Engine struct {
	Builtin []TaxType
	Loader  CustomLoader
	Logger  zerolog.Logger
}

// Types returns the tax types in application order: built-ins first, then
// the stored custom types. A loader failure degrades to built-ins only; tax
// calculation must not abort order processing.
func (e Engine) Types(ctx context.Context) []TaxType {
	types := make([]TaxType, 0, len(e.Builtin))
	types = append(types, e.Builtin...)
	if e.Loader == nil {
		return types
	}
	custom, err := e.Loader.EnabledTypes(ctx)
	if err != nil {
		e.Logger.Error().Err(err).Msg("load custom tax types")
		return types
	}
	return append(types, custom...)
}

// ApplyAll runs every tax type against the order and reports the total
// number of adjustments emitted.
func (e Engine) ApplyAll(ctx context.Context, oc OrderContext, o *order.Order) int {
	total := 0
	for _, t := range e.Types(ctx) {
		emitted := Apply(t, oc, o)
		total += emitted
		outcome := "applied"
		if emitted == 0 {
			outcome = "no_jurisdiction"
		}
		if obs.TaxResolutionsTotal != nil {
			obs.TaxResolutionsTotal.WithLabelValues(t.ID(), outcome).Inc()
		}
		if emitted > 0 && obs.TaxAdjustmentsTotal != nil {
			obs.TaxAdjustmentsTotal.WithLabelValues(t.ID(), t.DisplayLabel()).Add(float64(emitted))
		}
	}
	return total
}
