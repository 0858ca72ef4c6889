package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kampusadmin/dashboard-api/internal/httperr"
)

func TestValidateCampsPrices(t *testing.T) {
	assert.NoError(t, ValidateCampsPrices(nil, nil))
	assert.NoError(t, ValidateCampsPrices([]string{"A", "B"}, []float64{100.0, 200.5}))

	err := ValidateCampsPrices([]string{"A", "B"}, []float64{100.0})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationError))

	err = ValidateCampsPrices([]string{"A"}, []float64{-5})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationError))
}
