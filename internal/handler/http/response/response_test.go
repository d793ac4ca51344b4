package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSuccess_RendersDecimalsAsNumbers(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]decimal.Decimal{"amount": decimal.RequireFromString("1250.50")})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"amount":1250.5}}`, rec.Body.String())
}
