// Package quote exposes the tax calculation API: callers describe an order
// and receive the tax adjustments each line item attracts.
package quote

import (
	"encoding/json"
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/common"
	"github.com/bucefal91/commerce/internal/obs"
	"github.com/bucefal91/commerce/internal/order"
	"github.com/bucefal91/commerce/internal/tax"
	"github.com/bucefal91/commerce/internal/taxtype"
)

// Handler exposes the quote and tax type listing endpoints.
type Handler struct {
	Engine   taxtype.Engine
	Logger   zerolog.Logger
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(engine taxtype.Engine, logger zerolog.Logger) *Handler {
	return &Handler{Engine: engine, Logger: logger, validate: validator.New()}
}

type quoteRequest struct {
	Currency string         `json:"currency" validate:"required,len=3,alpha"`
	Date     string         `json:"date" validate:"required,datetime=2006-01-02"`
	Store    storePayload   `json:"store" validate:"required"`
	Customer addressPayload `json:"customer" validate:"required"`
	Items    []itemPayload  `json:"items" validate:"required,min=1,dive"`
}

type storePayload struct {
	Country          string   `json:"country" validate:"required,iso3166_1_alpha2"`
	PostalCode       string   `json:"postal_code"`
	TaxRegistrations []string `json:"tax_registrations" validate:"omitempty,dive,iso3166_1_alpha2"`
}

type addressPayload struct {
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
	PostalCode string `json:"postal_code"`
	TaxNumber  string `json:"tax_number"`
}

type itemPayload struct {
	ID        string          `json:"id" validate:"omitempty,uuid"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity" validate:"required,min=1"`
	Digital   bool            `json:"digital"`
}

type quotedItem struct {
	ID          string           `json:"id"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Quantity    int64            `json:"quantity"`
	Digital     bool             `json:"digital"`
	Adjustments []tax.Adjustment `json:"adjustments"`
}

type quoteResponse struct {
	Currency string          `json:"currency"`
	Date     string          `json:"date"`
	Items    []quotedItem    `json:"items"`
	TotalTax decimal.Decimal `json:"total_tax"`
}

// Quote handles POST /api/v1/tax/quote.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.countQuote("bad_request")
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.countQuote("bad_request")
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "request failed validation", validationDetails(err))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.countQuote("bad_request")
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid date", nil)
		return
	}

	registrations := make([]tax.CountryCode, 0, len(req.Store.TaxRegistrations))
	for _, country := range req.Store.TaxRegistrations {
		registrations = append(registrations, tax.CountryCode(country))
	}

	o := &order.Order{Currency: req.Currency, Date: date}
	for _, item := range req.Items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			h.countQuote("bad_request")
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid item id", nil)
			return
		}
		o.Items = append(o.Items, &order.Item{
			ID:        parsed,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Digital:   item.Digital,
		})
	}

	oc := taxtype.OrderContext{
		Store: order.Store{
			Address:          tax.Address{Country: tax.CountryCode(req.Store.Country), PostalCode: req.Store.PostalCode},
			TaxRegistrations: registrations,
		},
		CustomerAddress:   tax.Address{Country: tax.CountryCode(req.Customer.Country), PostalCode: req.Customer.PostalCode},
		CustomerTaxNumber: req.Customer.TaxNumber,
		Date:              date,
	}

	h.Engine.ApplyAll(r.Context(), oc, o)
	h.countQuote("ok")
	common.JSON(w, http.StatusOK, map[string]any{"data": buildResponse(req, o)})
}

func buildResponse(req quoteRequest, o *order.Order) quoteResponse {
	resp := quoteResponse{Currency: o.Currency, Date: req.Date, TotalTax: decimal.Zero}
	for _, item := range o.Items {
		adjustments := item.Adjustments()
		if adjustments == nil {
			adjustments = []tax.Adjustment{}
		}
		for _, a := range adjustments {
			quantity := decimal.NewFromInt(item.Quantity)
			resp.TotalTax = resp.TotalTax.Add(a.Amount.Mul(quantity))
		}
		resp.Items = append(resp.Items, quotedItem{
			ID:          item.ID.String(),
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Digital:     item.Digital,
			Adjustments: adjustments,
		})
	}
	return resp
}

type zoneSummary struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	RateCount  int      `json:"rate_count"`
	RateLabels []string `json:"rate_labels,omitempty"`
}

type typeSummary struct {
	ID               string        `json:"id"`
	Label            string        `json:"label"`
	DisplayLabel     string        `json:"display_label"`
	RoundingMode     string        `json:"rounding_mode"`
	DisplayInclusive bool          `json:"display_inclusive"`
	Zones            []zoneSummary `json:"zones"`
}

// Types handles GET /api/v1/tax/types. It lists every active tax type with
// its zones so integrators can see what the engine will consider.
func (h *Handler) Types(w http.ResponseWriter, r *http.Request) {
	var summaries []typeSummary
	for _, t := range h.Engine.Types(r.Context()) {
		summary := typeSummary{
			ID:               t.ID(),
			Label:            t.Label(),
			DisplayLabel:     t.DisplayLabel(),
			RoundingMode:     t.RoundingMode().String(),
			DisplayInclusive: t.DisplayInclusive(),
		}
		for _, zone := range t.Zones() {
			labels := make([]string, 0, len(zone.Rates))
			for _, rate := range zone.Rates {
				labels = append(labels, rate.Label)
			}
			summary.Zones = append(summary.Zones, zoneSummary{
				ID:         zone.ID,
				Label:      zone.Label,
				RateCount:  len(zone.Rates),
				RateLabels: labels,
			})
		}
		summaries = append(summaries, summary)
	}
	if summaries == nil {
		summaries = []typeSummary{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": summaries})
}

func (h *Handler) countQuote(result string) {
	if obs.QuoteRequestsTotal != nil {
		obs.QuoteRequestsTotal.WithLabelValues(result).Inc()
	}
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			details[fe.Namespace()] = "failed " + fe.Tag() + " validation"
		}
		return details
	}
	details["body"] = err.Error()
	return details
}
