package quote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bucefal91/commerce/internal/quote"
	"github.com/bucefal91/commerce/internal/taxtype"
)

func newHandler() *quote.Handler {
	engine := taxtype.Engine{Builtin: []taxtype.TaxType{taxtype.EU{}}, Logger: zerolog.Nop()}
	return quote.NewHandler(engine, zerolog.Nop())
}

func postQuote(t *testing.T, h *quote.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tax/quote", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Quote(rr, req)
	return rr
}

func TestQuotePhysicalCrossBorder(t *testing.T) {
	// physical product shipped from France to Germany without a German
	// registration: French origin VAT applies
	body := `{
		"currency": "EUR",
		"date": "2024-03-01",
		"store": {"country": "FR"},
		"customer": {"country": "DE"},
		"items": [{"unit_price": "100.00", "quantity": 1, "digital": false}]
	}`
	rr := postQuote(t, newHandler(), body)
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Data struct {
			TotalTax string `json:"total_tax"`
			Items    []struct {
				Adjustments []struct {
					Label        string `json:"label"`
					Amount       string `json:"amount"`
					SourceRateID string `json:"source_rate_id"`
					Included     bool   `json:"included"`
				} `json:"adjustments"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Len(t, payload.Data.Items, 1)
	require.Len(t, payload.Data.Items[0].Adjustments, 1)

	adjustment := payload.Data.Items[0].Adjustments[0]
	require.Equal(t, "vat", adjustment.Label)
	require.True(t, adjustment.Included)
	require.True(t, strings.HasPrefix(adjustment.SourceRateID, "eu|fr|"))
	// 20% folded into the inclusive price: 100 * 0.2 / 1.2
	require.Equal(t, "16.67", adjustment.Amount)
	require.Equal(t, "16.67", payload.Data.TotalTax)
}

func TestQuoteReverseCharge(t *testing.T) {
	// B2B physical sale to another member state lands in the
	// intra-community zone with a zero amount
	body := `{
		"currency": "EUR",
		"date": "2024-03-01",
		"store": {"country": "FR"},
		"customer": {"country": "DE", "tax_number": "DE123456789"},
		"items": [{"unit_price": "100.00", "quantity": 2, "digital": false}]
	}`
	rr := postQuote(t, newHandler(), body)
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Data struct {
			Items []struct {
				Adjustments []struct {
					SourceRateID string `json:"source_rate_id"`
				} `json:"adjustments"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Len(t, payload.Data.Items, 1)
	require.Empty(t, payload.Data.Items[0].Adjustments)
}

func TestQuoteOutsideJurisdiction(t *testing.T) {
	body := `{
		"currency": "USD",
		"date": "2024-03-01",
		"store": {"country": "US"},
		"customer": {"country": "US"},
		"items": [{"unit_price": "50.00", "quantity": 1, "digital": false}]
	}`
	rr := postQuote(t, newHandler(), body)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"adjustments":[]`)
}

func TestQuoteValidation(t *testing.T) {
	cases := map[string]string{
		"missing items":   `{"currency": "EUR", "date": "2024-03-01", "store": {"country": "FR"}, "customer": {"country": "DE"}, "items": []}`,
		"bad currency":    `{"currency": "EURO", "date": "2024-03-01", "store": {"country": "FR"}, "customer": {"country": "DE"}, "items": [{"unit_price": "1", "quantity": 1}]}`,
		"bad date":        `{"currency": "EUR", "date": "03/01/2024", "store": {"country": "FR"}, "customer": {"country": "DE"}, "items": [{"unit_price": "1", "quantity": 1}]}`,
		"bad country":     `{"currency": "EUR", "date": "2024-03-01", "store": {"country": "France"}, "customer": {"country": "DE"}, "items": [{"unit_price": "1", "quantity": 1}]}`,
		"not even json":   `{`,
		"zero quantity":   `{"currency": "EUR", "date": "2024-03-01", "store": {"country": "FR"}, "customer": {"country": "DE"}, "items": [{"unit_price": "1", "quantity": 0}]}`,
	}
	h := newHandler()
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := postQuote(t, h, body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestTypesListsBuiltins(t *testing.T) {
	h := newHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tax/types", nil)
	rr := httptest.NewRecorder()
	h.Types(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Data []struct {
			ID           string `json:"id"`
			DisplayLabel string `json:"display_label"`
			Zones        []struct {
				ID string `json:"id"`
			} `json:"zones"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Len(t, payload.Data, 1)
	require.Equal(t, "eu", payload.Data[0].ID)
	require.Equal(t, "vat", payload.Data[0].DisplayLabel)
	require.NotEmpty(t, payload.Data[0].Zones)
}
