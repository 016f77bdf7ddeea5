package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// TaxResolutionsTotal counts tax type applications by outcome.
	TaxResolutionsTotal *prometheus.CounterVec
	// TaxAdjustmentsTotal counts adjustments attached to order items.
	TaxAdjustmentsTotal *prometheus.CounterVec
	// TaxConfigCacheTotal counts configuration cache lookups by result.
	TaxConfigCacheTotal *prometheus.CounterVec
	// QuoteRequestsTotal counts tax quote requests by result.
	QuoteRequestsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		TaxResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_resolutions_total",
			Help:      "Count of tax type applications by outcome.",
		}, []string{"tax_type", "outcome"})
		TaxAdjustmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_adjustments_total",
			Help:      "Count of tax adjustments attached to order items.",
		}, []string{"tax_type", "label"})
		TaxConfigCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_config_cache_total",
			Help:      "Count of tax configuration cache lookups by result.",
		}, []string{"result"})
		QuoteRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_requests_total",
			Help:      "Count of tax quote requests by result.",
		}, []string{"result"})

		mustRegisterCollector(reg, TaxResolutionsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				TaxResolutionsTotal = v
			}
		})
		mustRegisterCollector(reg, TaxAdjustmentsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				TaxAdjustmentsTotal = v
			}
		})
		mustRegisterCollector(reg, TaxConfigCacheTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				TaxConfigCacheTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteRequestsTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteRequestsTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
