package currency

// fallbackTable is the static rate table used when the live source is
// unreachable or unconfigured. Rates are approximate snapshots; good enough
// to keep expense entry working while the network is degraded.
var fallbackTable = map[string]map[string]float64{
	"USD": {
		"USD": 1,
		"EUR": 0.92,
		"TRY": 32.5,
		"GBP": 0.79,
	},
	"EUR": {
		"USD": 1.09,
		"EUR": 1,
		"TRY": 35.3,
		"GBP": 0.86,
	},
	"TRY": {
		"USD": 0.031,
		"EUR": 0.028,
		"TRY": 1,
		"GBP": 0.024,
	},
	"GBP": {
		"USD": 1.27,
		"EUR": 1.16,
		"TRY": 41.2,
		"GBP": 1,
	},
}

// FallbackRates returns the static table for a base currency, or nil when the
// base itself is not covered.
func FallbackRates(base string) map[string]float64 {
	return fallbackTable[base]
}
