package taxconfig

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bucefal91/commerce/internal/common"
)

// Handler exposes REST endpoints for managing custom tax types.
type Handler struct {
	Service *Service
}

type configRequest struct {
	Label            string    `json:"label"`
	DisplayLabel     string    `json:"display_label"`
	RoundingMode     string    `json:"rounding_mode"`
	DisplayInclusive bool      `json:"display_inclusive"`
	Enabled          *bool     `json:"enabled"`
	Rates            []rateRow `json:"rates"`
	Territories      []string  `json:"territories"`
}

type rateRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// List handles GET /api/v1/admin/tax-types.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "tax type service not configured", nil)
		return
	}
	configs, err := h.Service.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if configs == nil {
		configs = []Config{}
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": configs})
}

// Get handles GET /api/v1/admin/tax-types/{taxTypeID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "tax type service not configured", nil)
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	cfg, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": cfg})
}

// Create handles POST /api/v1/admin/tax-types.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "tax type service not configured", nil)
		return
	}
	req, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	created, err := h.Service.Create(r.Context(), toConfig(uuid.Nil, req))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": created})
}

// Update handles PUT /api/v1/admin/tax-types/{taxTypeID}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "tax type service not configured", nil)
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	req, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	updated, err := h.Service.Update(r.Context(), toConfig(id, req))
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": updated})
}

// Delete handles DELETE /api/v1/admin/tax-types/{taxTypeID}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "tax type service not configured", nil)
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "taxTypeID"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid tax type id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func decodeConfig(w http.ResponseWriter, r *http.Request) (configRequest, bool) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload", nil)
		return configRequest{}, false
	}
	return req, true
}

func toConfig(id uuid.UUID, req configRequest) Config {
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	rates := make([]RateRow, 0, len(req.Rates))
	for _, row := range req.Rates {
		rates = append(rates, RateRow{Label: row.Label, Amount: row.Amount})
	}
	return Config{
		ID:               id,
		Label:            req.Label,
		DisplayLabel:     req.DisplayLabel,
		RoundingMode:     req.RoundingMode,
		DisplayInclusive: req.DisplayInclusive,
		Enabled:          enabled,
		Rates:            rates,
		Territories:      req.Territories,
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = "INTERNAL"
		}
		message := appErr.Message
		if message == "" {
			message = "internal error"
		}
		common.JSONError(w, status, code, message, appErr.Details)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
}
