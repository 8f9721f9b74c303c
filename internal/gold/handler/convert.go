package handler

import (
	"net/http"

	"goldprice/internal/domain"
	"goldprice/internal/gold"

	"github.com/go-chi/chi/v5"
)

type ConvertResponse struct {
	Amount float64             `json:"amount" example:"100"`
	From   domain.CurrencyCode `json:"from" example:"USD"`
	To     domain.CurrencyCode `json:"to" example:"EUR"`
	Result float64             `json:"result" example:"92"`
}

// Convert godoc
// @Summary Convert an amount between currencies
// @Tags Converter
// @Produce json
// @Param amount query number true "Amount"
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	amount, err := gold.ParseAmount(query.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	from, to, ok := parsePair(w, query.Get("from"), query.Get("to"))
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		Amount: amount,
		From:   from,
		To:     to,
		Result: h.service.Convert(amount, from, to),
	})
}

// GetRate godoc
// @Summary Exchange rate between two currencies
// @Tags Converter
// @Produce json
// @Param from path string true "Source currency"
// @Param to path string true "Target currency"
// @Success 200 {object} domain.ExchangeRate
// @Failure 400 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parsePair(w, chi.URLParam(r, "from"), chi.URLParam(r, "to"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Rate(from, to))
}

func parsePair(w http.ResponseWriter, rawFrom, rawTo string) (domain.CurrencyCode, domain.CurrencyCode, bool) {
	from := gold.NormalizeCode(rawFrom)
	if err := gold.ValidateCode(from); err != nil {
		writeError(w, http.StatusBadRequest, "from: "+err.Error())
		return "", "", false
	}
	to := gold.NormalizeCode(rawTo)
	if err := gold.ValidateCode(to); err != nil {
		writeError(w, http.StatusBadRequest, "to: "+err.Error())
		return "", "", false
	}
	return from, to, true
}
