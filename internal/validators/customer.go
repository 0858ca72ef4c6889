package validators

import "github.com/kampusadmin/dashboard-api/internal/httperr"

// ValidateCampsPrices enforces the camps/prices alignment the schema leaves
// open: each camp entry must have a price at the same position.
func ValidateCampsPrices(camps []string, prices []float64) error {
	if len(camps) != len(prices) {
		return httperr.ErrBusiness(httperr.CodeValidationError)
	}

	for _, p := range prices {
		if p < 0 {
			return httperr.ErrBusiness(httperr.CodeValidationError)
		}
	}

	return nil
}
