package handset

import (
	"strconv"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

// currencyPrefixWidth matches the fixed-width "N$" prefix the portal frontend
// prepends to device prices. Textual prices always lose their first two
// characters before parsing, exactly as the legacy system did.
// TODO: replace with a real currency parser once the frontend stops sending
// formatted strings; the fixed-offset strip breaks for other formats.
const currencyPrefixWidth = 2

// NormalizePrice converts a caller-supplied device price into a numeric
// amount. Numeric JSON values pass through; strings are stripped of the
// fixed currency prefix and parsed as a float.
func NormalizePrice(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, apperror.Validation("handset price is required")
	case float64:
		if v < 0 {
			return 0, apperror.Validation("handset price must not be negative")
		}
		return v, nil
	case string:
		if len(v) <= currencyPrefixWidth {
			return 0, apperror.Validation("invalid handset price: '" + v + "'")
		}
		price, err := strconv.ParseFloat(v[currencyPrefixWidth:], 64)
		if err != nil {
			return 0, apperror.Validation("invalid handset price: '" + v + "'")
		}
		if price < 0 {
			return 0, apperror.Validation("handset price must not be negative")
		}
		return price, nil
	}
	return 0, apperror.Validation("handset price must be a number or a currency string")
}
